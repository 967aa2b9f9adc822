package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo over the single-row
// schedule_settings table.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

// Get returns the stored settings, or ErrNotFound before the first Upsert.
func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.ScheduleSettings, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT selected_weekdays, earliest_start, latest_end, timezone FROM schedule_settings WHERE id = 1`)

	var s domain.ScheduleSettings
	var weekdays string
	var earliest, latest sql.NullString
	if err := row.Scan(&weekdays, &earliest, &latest, &s.Timezone); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule settings: %w", err)
	}

	var err error
	if s.SelectedWeekdays, err = parseWeekdayCodes(weekdays); err != nil {
		return nil, err
	}
	if s.EarliestStart, err = parseNullableClock(earliest); err != nil {
		return nil, err
	}
	if s.LatestEnd, err = parseNullableClock(latest); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.ScheduleSettings) error {
	query := `INSERT OR REPLACE INTO schedule_settings (id, selected_weekdays, earliest_start, latest_end, timezone, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		formatWeekdayCodes(s.SelectedWeekdays),
		nullableClock(s.EarliestStart),
		nullableClock(s.LatestEnd),
		s.Timezone,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting schedule settings: %w", err)
	}
	return nil
}

func nullableClock(c *domain.ClockTime) interface{} {
	if c == nil {
		return nil
	}
	return c.String()
}

func parseNullableClock(s sql.NullString) (*domain.ClockTime, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	c, err := domain.ParseClock(s.String)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
