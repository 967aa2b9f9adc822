package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledEnv(t *testing.T, tz string) (*testEnv, *domain.Plan) {
	t.Helper()
	env := newTestEnv(t)
	env.saveSettings(t, monWedFri(tz))
	plan := env.seedPlan(t, "")
	_, err := NewScheduleService(env.uow, nil).ScheduleWeek(context.Background(), scheduleReq(plan.ID, 1, false))
	require.NoError(t, err)
	return env, plan
}

func TestTaskService_ListForDay(t *testing.T) {
	env, _ := scheduledEnv(t, "UTC")
	svc := NewTaskService(env.tasks, env.plans, env.settings)
	ctx := context.Background()

	monday, err := svc.ListForDay(ctx, testutil.PlanMonday.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, monday, 1)
	assert.Equal(t, "Read", monday[0].Title)

	tuesday, err := svc.ListForDay(ctx, testutil.PlanMonday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, tuesday)
}

func TestTaskService_ListForDayInSettingsZone(t *testing.T) {
	env, _ := scheduledEnv(t, "Asia/Tokyo")
	svc := NewTaskService(env.tasks, env.plans, env.settings)

	tasks, err := svc.ListForDay(context.Background(), testutil.PlanMonday)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Asia/Tokyo", tasks[0].ScheduledStart.Location().String())
	assert.Equal(t, 18, tasks[0].ScheduledStart.Hour())
}

func TestTaskService_ListByWeek(t *testing.T) {
	env, plan := scheduledEnv(t, "UTC")
	svc := NewTaskService(env.tasks, env.plans, env.settings)
	ctx := context.Background()

	tasks, err := svc.ListByWeek(ctx, plan.ID, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].ScheduledStart.Before(tasks[1].ScheduledStart))

	_, err = svc.ListByWeek(ctx, plan.ID, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_StatusChanges(t *testing.T) {
	env, plan := scheduledEnv(t, "UTC")
	svc := NewTaskService(env.tasks, env.plans, env.settings)
	ctx := context.Background()

	tasks, err := svc.ListByWeek(ctx, plan.ID, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	require.NoError(t, svc.MarkDone(ctx, tasks[0].ID))
	require.NoError(t, svc.Skip(ctx, tasks[1].ID))

	done, err := env.tasks.GetByID(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduledDone, done.Status)
	skipped, err := env.tasks.GetByID(ctx, tasks[1].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduledSkipped, skipped.Status)

	require.NoError(t, svc.Delete(ctx, tasks[0].ID))
	assert.ErrorIs(t, svc.MarkDone(ctx, tasks[0].ID), repository.ErrNotFound)
}

func TestLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
