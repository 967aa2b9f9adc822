package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_GetBeforeUpsert(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	start := domain.ClockTime{Hour: 19, Minute: 30}
	in := &domain.ScheduleSettings{
		SelectedWeekdays: []domain.Weekday{domain.Sunday, domain.Wednesday},
		EarliestStart:    &start,
		Timezone:         "Asia/Shanghai",
	}
	require.NoError(t, repo.Upsert(ctx, in))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, in.SelectedWeekdays, got.SelectedWeekdays)
	require.NotNil(t, got.EarliestStart)
	assert.Equal(t, start, *got.EarliestStart)
	assert.Nil(t, got.LatestEnd)
	assert.Equal(t, "Asia/Shanghai", got.Timezone)

	// Second upsert replaces the single row.
	require.NoError(t, repo.Upsert(ctx, &domain.ScheduleSettings{}))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.SelectedWeekdays)
	assert.Nil(t, got.EarliestStart)
}
