package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/intelligence"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv holds one in-memory database with every repository over it.
type testEnv struct {
	db       *sql.DB
	uow      db.UnitOfWork
	goals    *repository.SQLiteGoalRepo
	plans    *repository.SQLitePlanRepo
	tasks    *repository.SQLiteScheduledTaskRepo
	settings *repository.SQLiteSettingsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		goals:    repository.NewSQLiteGoalRepo(database),
		plans:    repository.NewSQLitePlanRepo(database),
		tasks:    repository.NewSQLiteScheduledTaskRepo(database),
		settings: repository.NewSQLiteSettingsRepo(database),
	}
}

func (e *testEnv) seedGoal(t *testing.T, title string) *domain.Goal {
	t.Helper()
	g := testutil.NewTestGoal(title)
	require.NoError(t, e.goals.Create(context.Background(), g))
	return g
}

func (e *testEnv) seedPlan(t *testing.T, goalID string, opts ...testutil.PlanOption) *domain.Plan {
	t.Helper()
	p := testutil.NewTestPlan(goalID, opts...)
	require.NoError(t, e.plans.Create(context.Background(), p))
	return p
}

func (e *testEnv) saveSettings(t *testing.T, s domain.ScheduleSettings) {
	t.Helper()
	require.NoError(t, e.settings.Upsert(context.Background(), &s))
}

// fakeGenerator returns canned weeks and records the last request.
type fakeGenerator struct {
	weeks []domain.WeekPlan
	err   error
	last  intelligence.PlanRequest
}

func (f *fakeGenerator) Generate(_ context.Context, req intelligence.PlanRequest) ([]domain.WeekPlan, error) {
	f.last = req
	return f.weeks, f.err
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func clock(h, m int) *domain.ClockTime {
	return &domain.ClockTime{Hour: h, Minute: m}
}
