package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

const scheduledTaskColumns = `id, source_task_id, goal_id, plan_id, week_plan_id, week_number,
		title, description, quantity, duration_label, difficulty, part, parts,
		scheduled_start, scheduled_end, status, created_at, updated_at`

// SQLiteScheduledTaskRepo implements ScheduledTaskRepo using a SQLite database.
// Start and end are stored as UTC RFC3339 so range queries compare lexically.
type SQLiteScheduledTaskRepo struct {
	db db.DBTX
}

// NewSQLiteScheduledTaskRepo creates a new SQLiteScheduledTaskRepo.
func NewSQLiteScheduledTaskRepo(conn db.DBTX) *SQLiteScheduledTaskRepo {
	return &SQLiteScheduledTaskRepo{db: conn}
}

func (r *SQLiteScheduledTaskRepo) CreateBatch(ctx context.Context, tasks []domain.ScheduledTask) error {
	query := `INSERT INTO scheduled_tasks (` + scheduledTaskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	for _, st := range tasks {
		status := st.Status
		if status == "" {
			status = domain.ScheduledPending
		}
		_, err := r.db.ExecContext(ctx, query,
			st.ID,
			st.SourceTaskID,
			nullableString(st.GoalID),
			nullableString(st.PlanID),
			nullableString(st.WeekPlanID),
			st.WeekNumber,
			st.Title,
			st.Description,
			st.Quantity,
			st.DurationLabel,
			string(st.Difficulty),
			st.Part,
			st.Parts,
			timestamp(st.ScheduledStart),
			timestamp(st.ScheduledEnd),
			string(status),
			now,
			now,
		)
		if err != nil {
			return fmt.Errorf("inserting scheduled task %q: %w", st.Title, err)
		}
	}
	return nil
}

func (r *SQLiteScheduledTaskRepo) GetByID(ctx context.Context, id string) (*domain.ScheduledTask, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scheduledTaskColumns+` FROM scheduled_tasks WHERE id = ?`, id)
	st, err := scanScheduledTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scheduled task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning scheduled task: %w", err)
	}
	return st, nil
}

func (r *SQLiteScheduledTaskRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.ScheduledTask, error) {
	return r.list(ctx, `SELECT `+scheduledTaskColumns+` FROM scheduled_tasks
		WHERE scheduled_start >= ? AND scheduled_start < ?
		ORDER BY scheduled_start, id`, timestamp(from), timestamp(to))
}

func (r *SQLiteScheduledTaskRepo) ListByWeek(ctx context.Context, weekPlanID string) ([]*domain.ScheduledTask, error) {
	return r.list(ctx, `SELECT `+scheduledTaskColumns+` FROM scheduled_tasks
		WHERE week_plan_id = ?
		ORDER BY scheduled_start, id`, weekPlanID)
}

func (r *SQLiteScheduledTaskRepo) list(ctx context.Context, query string, args ...any) ([]*domain.ScheduledTask, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.ScheduledTask
	for rows.Next() {
		st, err := scanScheduledTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning scheduled task: %w", err)
		}
		tasks = append(tasks, st)
	}
	return tasks, rows.Err()
}

func (r *SQLiteScheduledTaskRepo) UpdateStatus(ctx context.Context, id string, status domain.ScheduledTaskStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE scheduled_tasks SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating scheduled task status: %w", err)
	}
	return requireAffected(res, "scheduled task", id)
}

// DeleteByWeek removes every scheduled task of a week and reports how many.
func (r *SQLiteScheduledTaskRepo) DeleteByWeek(ctx context.Context, weekPlanID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_tasks WHERE week_plan_id = ?`, weekPlanID)
	if err != nil {
		return 0, fmt.Errorf("deleting scheduled tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking affected rows: %w", err)
	}
	return n, nil
}

func (r *SQLiteScheduledTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scheduled task: %w", err)
	}
	return requireAffected(res, "scheduled task", id)
}

func scanScheduledTask(s scanner) (*domain.ScheduledTask, error) {
	var st domain.ScheduledTask
	var goalID, planID, weekPlanID sql.NullString
	var difficulty, start, end, status, createdAt, updatedAt string
	if err := s.Scan(
		&st.ID,
		&st.SourceTaskID,
		&goalID,
		&planID,
		&weekPlanID,
		&st.WeekNumber,
		&st.Title,
		&st.Description,
		&st.Quantity,
		&st.DurationLabel,
		&difficulty,
		&st.Part,
		&st.Parts,
		&start,
		&end,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	st.Task.ID = st.SourceTaskID
	st.GoalID = goalID.String
	st.PlanID = planID.String
	st.WeekPlanID = weekPlanID.String
	st.Difficulty = domain.Difficulty(difficulty)
	st.Status = domain.ScheduledTaskStatus(status)

	var err error
	if st.ScheduledStart, err = time.Parse(time.RFC3339, start); err != nil {
		return nil, fmt.Errorf("parsing scheduled_start: %w", err)
	}
	if st.ScheduledEnd, err = time.Parse(time.RFC3339, end); err != nil {
		return nil, fmt.Errorf("parsing scheduled_end: %w", err)
	}
	st.EstimatedDuration = st.Duration()
	st.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	st.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &st, nil
}
