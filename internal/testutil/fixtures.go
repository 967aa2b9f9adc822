package testutil

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

// PlanMonday is the default plan start used by fixtures.
var PlanMonday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// Goal options
type GoalOption func(*domain.Goal)

func WithTargetDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.TargetDate = &d
	}
}

func WithSubject(s string) GoalOption {
	return func(g *domain.Goal) {
		g.Subject = s
	}
}

func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC().Truncate(time.Second)
	g := &domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Task options
type TaskOption func(*domain.Task)

func WithDuration(d time.Duration) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedDuration = d
	}
}

func WithDifficulty(d domain.Difficulty) TaskOption {
	return func(t *domain.Task) {
		t.Difficulty = d
	}
}

func WithDescription(s string) TaskOption {
	return func(t *domain.Task) {
		t.Description = s
	}
}

func WithPreferredWeekdays(days ...domain.Weekday) TaskOption {
	return func(t *domain.Task) {
		t.PreferredWeekdays = days
	}
}

func WithDependencies(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Dependencies = ids
	}
}

// NewTestTask returns a one-hour medium task.
func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:                uuid.New().String(),
		Title:             title,
		DurationLabel:     "1 h",
		EstimatedDuration: time.Hour,
		Difficulty:        domain.DifficultyMedium,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Plan options
type PlanOption func(*domain.Plan)

func WithStartDate(d time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.StartDate = d
	}
}

// WithWeeks replaces the plan's weeks; week n holds weeks[n-1].
func WithWeeks(weeks ...[]domain.Task) PlanOption {
	return func(p *domain.Plan) {
		p.Weeks = nil
		for i, tasks := range weeks {
			p.Weeks = append(p.Weeks, domain.WeekPlan{
				ID:         uuid.New().String(),
				WeekNumber: i + 1,
				Tasks:      tasks,
			})
		}
	}
}

func WithSource(s domain.PlanSource) PlanOption {
	return func(p *domain.Plan) {
		p.Source = s
	}
}

// NewTestPlan returns a generated plan starting on PlanMonday with one week
// holding a single 90-minute "Read" task. Week dates follow the start date.
func NewTestPlan(goalID string, opts ...PlanOption) *domain.Plan {
	p := &domain.Plan{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Title:     "Test plan",
		StartDate: PlanMonday,
		Source:    domain.PlanGenerated,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	WithWeeks([]domain.Task{NewTestTask("Read", WithDuration(90*time.Minute))})(p)
	for _, opt := range opts {
		opt(p)
	}
	for i := range p.Weeks {
		w := &p.Weeks[i]
		w.PlanID = p.ID
		w.StartDate = p.StartDate.AddDate(0, 0, 7*(w.WeekNumber-1))
		w.EndDate = w.StartDate.AddDate(0, 0, 6)
	}
	p.WeekCount = len(p.Weeks)
	return p
}
