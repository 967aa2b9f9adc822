package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
)

type taskService struct {
	tasks    repository.ScheduledTaskRepo
	plans    repository.PlanRepo
	settings repository.SettingsRepo
}

func NewTaskService(
	tasks repository.ScheduledTaskRepo,
	plans repository.PlanRepo,
	settings repository.SettingsRepo,
) TaskService {
	return &taskService{tasks: tasks, plans: plans, settings: settings}
}

func (s *taskService) ListForDay(ctx context.Context, day time.Time) ([]*domain.ScheduledTask, error) {
	cal, err := settingsCalendar(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	from := cal.DateOf(day)
	tasks, err := s.tasks.ListBetween(ctx, from, cal.AddDays(from, 1))
	if err != nil {
		return nil, err
	}
	return inLocation(tasks, cal.Location), nil
}

func (s *taskService) ListByWeek(ctx context.Context, planID string, weekNumber int) ([]*domain.ScheduledTask, error) {
	week, err := s.plans.GetWeek(ctx, planID, weekNumber)
	if err != nil {
		return nil, err
	}
	cal, err := settingsCalendar(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByWeek(ctx, week.ID)
	if err != nil {
		return nil, err
	}
	return inLocation(tasks, cal.Location), nil
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	return s.tasks.UpdateStatus(ctx, id, domain.ScheduledDone)
}

func (s *taskService) Skip(ctx context.Context, id string) error {
	return s.tasks.UpdateStatus(ctx, id, domain.ScheduledSkipped)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// inLocation converts stored UTC timestamps for display in loc.
func inLocation(tasks []*domain.ScheduledTask, loc *time.Location) []*domain.ScheduledTask {
	for _, t := range tasks {
		t.ScheduledStart = t.ScheduledStart.In(loc)
		t.ScheduledEnd = t.ScheduledEnd.In(loc)
	}
	return tasks
}
