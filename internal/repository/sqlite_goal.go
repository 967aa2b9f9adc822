package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

const goalColumns = `id, title, description, subject, target_date, created_at, updated_at`

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		g.Description,
		g.Subject,
		nullableTimeToString(g.TargetDate, dateLayout),
		timestamp(g.CreatedAt),
		timestamp(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteGoalRepo) List(ctx context.Context) ([]*domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET title = ?, description = ?, subject = ?, target_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Title,
		g.Description,
		g.Subject,
		nullableTimeToString(g.TargetDate, dateLayout),
		nowUTC(),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return requireAffected(res, "goal", g.ID)
}

// Delete removes the goal; its plans, weeks and scheduled tasks cascade.
func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return requireAffected(res, "goal", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(s scanner) (*domain.Goal, error) {
	var g domain.Goal
	var targetDate sql.NullString
	var createdAt, updatedAt string
	if err := s.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.Subject,
		&targetDate,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	g.TargetDate = parseNullableTime(targetDate, dateLayout)
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	g.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &g, nil
}

func requireAffected(res sql.Result, what, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}
