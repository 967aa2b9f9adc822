package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlan(t *testing.T, repo *SQLitePlanRepo) *domain.Plan {
	t.Helper()
	plan := testutil.NewTestPlan("")
	require.NoError(t, repo.Create(context.Background(), plan))
	return plan
}

func scheduledAt(plan *domain.Plan, start time.Time, d time.Duration) domain.ScheduledTask {
	task := plan.Weeks[0].Tasks[0]
	return domain.ScheduledTask{
		ID:             uuid.New().String(),
		Task:           task,
		SourceTaskID:   task.ID,
		Part:           1,
		Parts:          1,
		PlanID:         plan.ID,
		WeekPlanID:     plan.Weeks[0].ID,
		WeekNumber:     1,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(d),
	}
}

func TestScheduledTaskRepo_CreateBatchAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	plan := seedPlan(t, NewSQLitePlanRepo(db))
	repo := NewSQLiteScheduledTaskRepo(db)
	ctx := context.Background()

	cst := time.FixedZone("CST", 8*3600)
	start := time.Date(2025, 3, 10, 18, 0, 0, 0, cst)
	st := scheduledAt(plan, start, 45*time.Minute)
	require.NoError(t, repo.CreateBatch(ctx, []domain.ScheduledTask{st}))

	fetched, err := repo.GetByID(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, start.Equal(fetched.ScheduledStart))
	assert.Equal(t, 45*time.Minute, fetched.Duration())
	assert.Equal(t, 45*time.Minute, fetched.EstimatedDuration)
	assert.Equal(t, domain.ScheduledPending, fetched.Status)
	assert.Equal(t, st.SourceTaskID, fetched.Task.ID)
	assert.Equal(t, "Read", fetched.Title)
	assert.Equal(t, plan.Weeks[0].ID, fetched.WeekPlanID)
	assert.Empty(t, fetched.GoalID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduledTaskRepo_ListBetweenIsHalfOpenAndOrdered(t *testing.T) {
	db := testutil.NewTestDB(t)
	plan := seedPlan(t, NewSQLitePlanRepo(db))
	repo := NewSQLiteScheduledTaskRepo(db)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	late := scheduledAt(plan, day.Add(20*time.Hour), time.Hour)
	early := scheduledAt(plan, day.Add(18*time.Hour), time.Hour)
	nextDay := scheduledAt(plan, day.AddDate(0, 0, 1), time.Hour)
	require.NoError(t, repo.CreateBatch(ctx, []domain.ScheduledTask{late, early, nextDay}))

	tasks, err := repo.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, early.ID, tasks[0].ID)
	assert.Equal(t, late.ID, tasks[1].ID)
}

func TestScheduledTaskRepo_ListBetweenAcrossZones(t *testing.T) {
	db := testutil.NewTestDB(t)
	plan := seedPlan(t, NewSQLitePlanRepo(db))
	repo := NewSQLiteScheduledTaskRepo(db)
	ctx := context.Background()

	// 07:00 on the 11th in UTC+8 is 23:00 on the 10th in UTC.
	cst := time.FixedZone("CST", 8*3600)
	st := scheduledAt(plan, time.Date(2025, 3, 11, 7, 0, 0, 0, cst), time.Hour)
	require.NoError(t, repo.CreateBatch(ctx, []domain.ScheduledTask{st}))

	from := time.Date(2025, 3, 11, 0, 0, 0, 0, cst)
	tasks, err := repo.ListBetween(ctx, from, from.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestScheduledTaskRepo_UpdateStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	plan := seedPlan(t, NewSQLitePlanRepo(db))
	repo := NewSQLiteScheduledTaskRepo(db)
	ctx := context.Background()

	st := scheduledAt(plan, testutil.PlanMonday.Add(18*time.Hour), time.Hour)
	require.NoError(t, repo.CreateBatch(ctx, []domain.ScheduledTask{st}))

	require.NoError(t, repo.UpdateStatus(ctx, st.ID, domain.ScheduledDone))
	fetched, err := repo.GetByID(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduledDone, fetched.Status)

	assert.Error(t, repo.UpdateStatus(ctx, st.ID, domain.ScheduledTaskStatus("bogus")))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", domain.ScheduledSkipped), ErrNotFound)
}

func TestScheduledTaskRepo_DeleteByWeek(t *testing.T) {
	db := testutil.NewTestDB(t)
	plan := seedPlan(t, NewSQLitePlanRepo(db))
	repo := NewSQLiteScheduledTaskRepo(db)
	ctx := context.Background()

	base := testutil.PlanMonday.Add(18 * time.Hour)
	batch := []domain.ScheduledTask{
		scheduledAt(plan, base, time.Hour),
		scheduledAt(plan, base.AddDate(0, 0, 2), time.Hour),
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))

	listed, err := repo.ListByWeek(ctx, plan.Weeks[0].ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	n, err := repo.DeleteByWeek(ctx, plan.Weeks[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	listed, err = repo.ListByWeek(ctx, plan.Weeks[0].ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestScheduledTaskRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	plan := seedPlan(t, NewSQLitePlanRepo(db))
	repo := NewSQLiteScheduledTaskRepo(db)
	ctx := context.Background()

	st := scheduledAt(plan, testutil.PlanMonday, time.Hour)
	require.NoError(t, repo.CreateBatch(ctx, []domain.ScheduledTask{st}))
	require.NoError(t, repo.Delete(ctx, st.ID))
	assert.ErrorIs(t, repo.Delete(ctx, st.ID), ErrNotFound)
}
