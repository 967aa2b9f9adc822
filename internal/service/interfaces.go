package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/intelligence"
)

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	Generate(ctx context.Context, req contract.GeneratePlanRequest) (*domain.Plan, error)
	Import(ctx context.Context, req contract.ImportPlanRequest) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	// List returns plan headers; an empty goalID lists every plan.
	List(ctx context.Context, goalID string) ([]*domain.Plan, error)
	GetWeek(ctx context.Context, planID string, weekNumber int) (*domain.WeekPlan, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	ScheduleWeek(ctx context.Context, req contract.ScheduleWeekRequest) (*contract.ScheduleWeekResponse, error)
	// SchedulePlan schedules every week of the plan in one transaction.
	SchedulePlan(ctx context.Context, planID string, replace bool) ([]*contract.ScheduleWeekResponse, error)
}

type TaskService interface {
	// ListForDay returns the tasks starting on the calendar date of day, in
	// the configured time zone.
	ListForDay(ctx context.Context, day time.Time) ([]*domain.ScheduledTask, error)
	ListByWeek(ctx context.Context, planID string, weekNumber int) ([]*domain.ScheduledTask, error)
	MarkDone(ctx context.Context, id string) error
	Skip(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	// Get returns the stored settings, or the defaults before the first save.
	Get(ctx context.Context) (*domain.ScheduleSettings, error)
	Update(ctx context.Context, s *domain.ScheduleSettings) error
}

// PlanGenerator produces week plans for a goal. *intelligence.PlanGenerator
// satisfies it.
type PlanGenerator interface {
	Generate(ctx context.Context, req intelligence.PlanRequest) ([]domain.WeekPlan, error)
}
