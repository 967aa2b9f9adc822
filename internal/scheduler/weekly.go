package scheduler

import (
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

// Scheduler places a week's abstract tasks onto concrete time slots. It
// keeps no state between calls and is safe for concurrent use.
type Scheduler struct {
	cal   Calendar
	newID func() string
}

type Option func(*Scheduler)

// WithCalendar pins the calendar (time zone) used for day arithmetic.
func WithCalendar(cal Calendar) Option {
	return func(s *Scheduler) {
		s.cal = cal
	}
}

// WithIDGenerator overrides how scheduled task ids are minted. The function
// must be safe for concurrent use if the Scheduler is shared.
func WithIDGenerator(fn func() string) Option {
	return func(s *Scheduler) {
		s.newID = fn
	}
}

// New returns a Scheduler using UTC and random UUIDs unless overridden.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		cal:   NewCalendar(nil),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calendar returns the scheduler's calendar.
func (s *Scheduler) Calendar() Calendar {
	return s.cal
}

// ScheduleWeek distributes the week's tasks over the selected days and packs
// each day's share into that day's study window. Work that cannot be placed
// is returned in Unscheduled instead of being silently dropped.
func (s *Scheduler) ScheduleWeek(req contract.ScheduleRequest) contract.ScheduleResult {
	settings := domain.DefaultScheduleSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	weekStart := s.cal.DayStart(req.WeekStart)
	origin := Origin{
		GoalID:     req.GoalID,
		PlanID:     req.PlanID,
		WeekPlanID: req.WeekPlan.ID,
		WeekNumber: req.WeekPlan.WeekNumber,
	}

	days, unscheduled := Distribute(req.WeekPlan.Tasks, weekStart, settings, s.cal)
	result := contract.ScheduleResult{Unscheduled: unscheduled}

	for offset := 0; offset < 7; offset++ {
		date := s.cal.AddDays(weekStart, offset)
		if !settings.IsSelected(s.cal.WeekdayCode(date)) {
			continue
		}
		subs := days[offset]
		if len(subs) == 0 {
			continue
		}
		slots := GenerateSlots(date, settings, s.cal)
		scheduled, dropped := PackDay(date, subs, slots, origin, s.newID)
		result.Scheduled = append(result.Scheduled, scheduled...)
		result.Unscheduled = append(result.Unscheduled, dropped...)
	}

	return result
}
