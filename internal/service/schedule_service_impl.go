package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

type scheduleService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	options  []scheduler.Option
}

// NewScheduleService schedules stored plans. Repositories are created per
// transaction from uow. Scheduler options apply after the calendar derived
// from settings.
func NewScheduleService(uow db.UnitOfWork, observer UseCaseObserver, opts ...scheduler.Option) ScheduleService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &scheduleService{uow: uow, observer: observer, options: opts}
}

func (s *scheduleService) ScheduleWeek(ctx context.Context, req contract.ScheduleWeekRequest) (resp *contract.ScheduleWeekResponse, err error) {
	fields := map[string]any{"plan": req.PlanID, "week": req.WeekNumber, "replace": req.Replace}
	defer observe(ctx, s.observer, "schedule-week", fields, time.Now(), &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		plan, err := plans.GetByID(ctx, req.PlanID)
		if err != nil {
			return err
		}
		week := plan.Week(req.WeekNumber)
		if week == nil {
			return fmt.Errorf("week %d of plan %s: %w", req.WeekNumber, req.PlanID, repository.ErrNotFound)
		}
		settings, err := s.resolveSettings(ctx, tx, req.Settings)
		if err != nil {
			return err
		}
		resp, err = s.scheduleWeek(ctx, tx, plan, week, settings, req.Replace)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["scheduled"] = len(resp.Result.Scheduled)
	fields["unscheduled"] = len(resp.Result.Unscheduled)
	return resp, nil
}

func (s *scheduleService) SchedulePlan(ctx context.Context, planID string, replace bool) (out []*contract.ScheduleWeekResponse, err error) {
	fields := map[string]any{"plan": planID, "replace": replace}
	defer observe(ctx, s.observer, "schedule-plan", fields, time.Now(), &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plan, err := repository.NewSQLitePlanRepo(tx).GetByID(ctx, planID)
		if err != nil {
			return err
		}
		settings, err := s.resolveSettings(ctx, tx, nil)
		if err != nil {
			return err
		}
		for i := range plan.Weeks {
			resp, err := s.scheduleWeek(ctx, tx, plan, &plan.Weeks[i], settings, replace)
			if err != nil {
				return err
			}
			out = append(out, resp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["weeks"] = len(out)
	return out, nil
}

func (s *scheduleService) resolveSettings(ctx context.Context, tx db.DBTX, override *domain.ScheduleSettings) (*domain.ScheduleSettings, error) {
	if override != nil {
		if err := validateSettings(override); err != nil {
			return nil, err
		}
		return override, nil
	}
	return loadSettings(ctx, repository.NewSQLiteSettingsRepo(tx))
}

// scheduleWeek places one week inside an open transaction and stores the
// scheduled tasks. Unscheduled work is returned, not stored.
func (s *scheduleService) scheduleWeek(
	ctx context.Context,
	tx db.DBTX,
	plan *domain.Plan,
	week *domain.WeekPlan,
	settings *domain.ScheduleSettings,
	replace bool,
) (*contract.ScheduleWeekResponse, error) {
	tasks := repository.NewSQLiteScheduledTaskRepo(tx)

	existing, err := tasks.ListByWeek(ctx, week.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		if !replace {
			return nil, fmt.Errorf("week %d has %d scheduled tasks: %w", week.WeekNumber, len(existing), ErrAlreadyScheduled)
		}
		if _, err := tasks.DeleteByWeek(ctx, week.ID); err != nil {
			return nil, err
		}
	}

	cal, err := calendarFor(settings)
	if err != nil {
		return nil, err
	}
	opts := append([]scheduler.Option{scheduler.WithCalendar(cal)}, s.options...)
	weekStart := cal.DateOf(week.StartDate)

	result := scheduler.New(opts...).ScheduleWeek(contract.ScheduleRequest{
		WeekPlan:  *week,
		WeekStart: weekStart,
		GoalID:    plan.GoalID,
		PlanID:    plan.ID,
		Settings:  settings,
	})
	if err := tasks.CreateBatch(ctx, result.Scheduled); err != nil {
		return nil, err
	}

	return &contract.ScheduleWeekResponse{
		PlanID:      plan.ID,
		WeekNumber:  week.WeekNumber,
		WeekStart:   weekStart,
		Result:      result,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
