package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleReq(planID string, week int, replace bool) contract.ScheduleWeekRequest {
	return contract.ScheduleWeekRequest{PlanID: planID, WeekNumber: week, Replace: replace}
}

func monWedFri(tz string) domain.ScheduleSettings {
	return domain.ScheduleSettings{
		SelectedWeekdays: []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
		EarliestStart:    clock(18, 0),
		LatestEnd:        clock(22, 0),
		Timezone:         tz,
	}
}

func TestScheduleService_ScheduleWeekStoresTasks(t *testing.T) {
	env := newTestEnv(t)
	env.saveSettings(t, monWedFri("UTC"))
	goal := env.seedGoal(t, "IELTS")
	plan := env.seedPlan(t, goal.ID)
	obs := &recordingObserver{}
	svc := NewScheduleService(env.uow, obs)
	ctx := context.Background()

	resp, err := svc.ScheduleWeek(ctx, scheduleReq(plan.ID, 1, false))
	require.NoError(t, err)
	assert.Equal(t, testutil.PlanMonday, resp.WeekStart)
	assert.True(t, resp.Result.Complete())
	require.Len(t, resp.Result.Scheduled, 2)

	stored, err := env.tasks.ListByWeek(ctx, plan.Weeks[0].ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, testutil.PlanMonday.Add(18*time.Hour), stored[0].ScheduledStart)
	assert.Equal(t, testutil.PlanMonday.AddDate(0, 0, 2).Add(18*time.Hour), stored[1].ScheduledStart)
	for _, st := range stored {
		assert.Equal(t, 45*time.Minute, st.Duration())
		assert.Equal(t, goal.ID, st.GoalID)
		assert.Equal(t, plan.ID, st.PlanID)
		assert.Equal(t, plan.Weeks[0].Tasks[0].ID, st.SourceTaskID)
		assert.Equal(t, domain.ScheduledPending, st.Status)
	}

	ev := obs.last()
	assert.Equal(t, "schedule-week", ev.Name)
	assert.Equal(t, 2, ev.Fields["scheduled"])
	assert.Equal(t, 0, ev.Fields["unscheduled"])
}

func TestScheduleService_RescheduleNeedsReplace(t *testing.T) {
	env := newTestEnv(t)
	env.saveSettings(t, monWedFri("UTC"))
	plan := env.seedPlan(t, "")
	svc := NewScheduleService(env.uow, nil)
	ctx := context.Background()

	_, err := svc.ScheduleWeek(ctx, scheduleReq(plan.ID, 1, false))
	require.NoError(t, err)

	_, err = svc.ScheduleWeek(ctx, scheduleReq(plan.ID, 1, false))
	assert.ErrorIs(t, err, ErrAlreadyScheduled)

	_, err = svc.ScheduleWeek(ctx, scheduleReq(plan.ID, 1, true))
	require.NoError(t, err)
	stored, err := env.tasks.ListByWeek(ctx, plan.Weeks[0].ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2, "replace drops the previous schedule")
}

func TestScheduleService_UsesSettingsTimezone(t *testing.T) {
	env := newTestEnv(t)
	env.saveSettings(t, monWedFri("Asia/Shanghai"))
	plan := env.seedPlan(t, "")
	svc := NewScheduleService(env.uow, nil)

	resp, err := svc.ScheduleWeek(context.Background(), scheduleReq(plan.ID, 1, false))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Result.Scheduled)

	first := resp.Result.Scheduled[0].ScheduledStart
	assert.Equal(t, 18, first.Hour())
	assert.Equal(t, time.Monday, first.Weekday())
	assert.Equal(t, 10, first.UTC().Hour())
}

func TestScheduleService_SettingsOverride(t *testing.T) {
	env := newTestEnv(t)
	env.saveSettings(t, monWedFri("UTC"))
	plan := env.seedPlan(t, "")
	svc := NewScheduleService(env.uow, nil)

	override := domain.ScheduleSettings{
		SelectedWeekdays: []domain.Weekday{domain.Saturday},
		EarliestStart:    clock(9, 0),
		LatestEnd:        clock(12, 0),
		Timezone:         "UTC",
	}
	req := scheduleReq(plan.ID, 1, false)
	req.Settings = &override

	resp, err := svc.ScheduleWeek(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Result.Scheduled, 1)
	assert.Equal(t, testutil.PlanMonday.AddDate(0, 0, 5).Add(9*time.Hour), resp.Result.Scheduled[0].ScheduledStart)

	bad := domain.ScheduleSettings{EarliestStart: clock(12, 0), LatestEnd: clock(9, 0)}
	req.Settings = &bad
	req.Replace = true
	_, err = svc.ScheduleWeek(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestScheduleService_ReportsUnscheduledWithoutStoringThem(t *testing.T) {
	env := newTestEnv(t)
	env.saveSettings(t, domain.ScheduleSettings{
		SelectedWeekdays: []domain.Weekday{domain.Monday},
		EarliestStart:    clock(18, 0),
		LatestEnd:        clock(18, 30),
		Timezone:         "UTC",
	})
	plan := env.seedPlan(t, "", testutil.WithWeeks([]domain.Task{
		testutil.NewTestTask("Short", testutil.WithDuration(15*time.Minute), testutil.WithDifficulty(domain.DifficultyEasy)),
		testutil.NewTestTask("Long", testutil.WithDuration(2*time.Hour)),
	}))
	svc := NewScheduleService(env.uow, nil)
	ctx := context.Background()

	resp, err := svc.ScheduleWeek(ctx, scheduleReq(plan.ID, 1, false))
	require.NoError(t, err)
	require.Len(t, resp.Result.Scheduled, 1)
	assert.Equal(t, "Short", resp.Result.Scheduled[0].Title)
	require.Len(t, resp.Result.Unscheduled, 1)
	assert.Equal(t, contract.UnscheduledCapacityExceeded, resp.Result.Unscheduled[0].Code)

	stored, err := env.tasks.ListByWeek(ctx, plan.Weeks[0].ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestScheduleService_UnknownWeek(t *testing.T) {
	env := newTestEnv(t)
	plan := env.seedPlan(t, "")
	svc := NewScheduleService(env.uow, nil)

	_, err := svc.ScheduleWeek(context.Background(), scheduleReq(plan.ID, 9, false))
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.ScheduleWeek(context.Background(), scheduleReq("missing", 1, false))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScheduleService_SchedulePlanCoversEveryWeek(t *testing.T) {
	env := newTestEnv(t)
	env.saveSettings(t, monWedFri("UTC"))
	plan := env.seedPlan(t, "", testutil.WithWeeks(
		[]domain.Task{testutil.NewTestTask("A")},
		[]domain.Task{testutil.NewTestTask("B")},
		[]domain.Task{testutil.NewTestTask("C")},
	))
	svc := NewScheduleService(env.uow, nil)
	ctx := context.Background()

	out, err := svc.SchedulePlan(ctx, plan.ID, false)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, resp := range out {
		assert.Equal(t, i+1, resp.WeekNumber)
		assert.Equal(t, testutil.PlanMonday.AddDate(0, 0, 7*i), resp.WeekStart)
		assert.True(t, resp.Result.Complete())
	}

	// Each one-hour task is split into two 30-minute shares.
	all, err := env.tasks.ListBetween(ctx, testutil.PlanMonday, testutil.PlanMonday.AddDate(0, 0, 21))
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestScheduleService_SchedulePlanRollsBackAllWeeks(t *testing.T) {
	env := newTestEnv(t)
	env.saveSettings(t, monWedFri("UTC"))
	plan := env.seedPlan(t, "", testutil.WithWeeks(
		[]domain.Task{testutil.NewTestTask("A")},
		[]domain.Task{testutil.NewTestTask("B")},
	))
	// Each week stores two shares; exec #3 is week 2's first.
	failUoW := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 3, Err: fmt.Errorf("injected insert failure")}
	svc := NewScheduleService(failUoW, nil)
	ctx := context.Background()

	_, err := svc.SchedulePlan(ctx, plan.ID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	all, err := env.tasks.ListBetween(ctx, testutil.PlanMonday, testutil.PlanMonday.AddDate(0, 0, 14))
	require.NoError(t, err)
	assert.Empty(t, all)
}
