package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

// PlanRepo stores a plan together with its week plans and their tasks.
type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Plan, error)
	GetWeek(ctx context.Context, planID string, weekNumber int) (*domain.WeekPlan, error)
	Delete(ctx context.Context, id string) error
}

type ScheduledTaskRepo interface {
	CreateBatch(ctx context.Context, tasks []domain.ScheduledTask) error
	GetByID(ctx context.Context, id string) (*domain.ScheduledTask, error)
	// ListBetween returns tasks starting in [from, to), ordered by start.
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.ScheduledTask, error)
	ListByWeek(ctx context.Context, weekPlanID string) ([]*domain.ScheduledTask, error)
	UpdateStatus(ctx context.Context, id string, status domain.ScheduledTaskStatus) error
	DeleteByWeek(ctx context.Context, weekPlanID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.ScheduleSettings, error)
	Upsert(ctx context.Context, s *domain.ScheduleSettings) error
}
