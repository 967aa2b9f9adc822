package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

const planColumns = `id, goal_id, title, start_date, week_count, source, created_at`

const weekPlanColumns = `id, plan_id, week_number, start_date, end_date, milestones,
		task_count_hint, estimated_hours_hint`

const weekTaskColumns = `id, title, description, quantity, duration_label, estimated_duration_sec,
		difficulty, preferred_weekdays, preferred_time_slots, dependencies`

// SQLitePlanRepo implements PlanRepo using a SQLite database. Create writes
// several tables; callers wanting atomicity pass a transaction.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (` + planColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		nullableString(p.GoalID),
		p.Title,
		p.StartDate.Format(dateLayout),
		p.WeekCount,
		string(p.Source),
		timestamp(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for i := range p.Weeks {
		w := &p.Weeks[i]
		w.PlanID = p.ID
		if err := r.insertWeek(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePlanRepo) insertWeek(ctx context.Context, w *domain.WeekPlan) error {
	milestones, err := encodeList(w.Milestones)
	if err != nil {
		return err
	}
	query := `INSERT INTO week_plans (` + weekPlanColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		w.ID,
		w.PlanID,
		w.WeekNumber,
		w.StartDate.Format(dateLayout),
		w.EndDate.Format(dateLayout),
		milestones,
		w.TaskCountHint,
		w.EstimatedHoursHint,
	)
	if err != nil {
		return fmt.Errorf("inserting week %d: %w", w.WeekNumber, err)
	}

	for i, t := range w.Tasks {
		if err := r.insertTask(ctx, w.ID, i, t); err != nil {
			return fmt.Errorf("week %d: %w", w.WeekNumber, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) insertTask(ctx context.Context, weekPlanID string, order int, t domain.Task) error {
	slots, err := encodeList(t.PreferredTimeSlots)
	if err != nil {
		return err
	}
	deps, err := encodeList(t.Dependencies)
	if err != nil {
		return err
	}
	query := `INSERT INTO week_tasks (id, week_plan_id, order_index, title, description, quantity,
		duration_label, estimated_duration_sec, difficulty, preferred_weekdays, preferred_time_slots, dependencies)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		weekPlanID,
		order,
		t.Title,
		t.Description,
		t.Quantity,
		t.DurationLabel,
		int64(t.EstimatedDuration/time.Second),
		string(t.Difficulty),
		formatWeekdayCodes(t.PreferredWeekdays),
		slots,
		deps,
	)
	if err != nil {
		return fmt.Errorf("inserting task %q: %w", t.Title, err)
	}
	return nil
}

// GetByID loads the plan with all of its weeks and tasks.
func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id)
	p, err := scanPlan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	weeks, err := r.listWeeks(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	for i := range weeks {
		tasks, err := r.listTasks(ctx, weeks[i].ID)
		if err != nil {
			return nil, err
		}
		weeks[i].Tasks = tasks
	}
	p.Weeks = weeks
	return p, nil
}

// List returns plan headers without weeks, newest first.
func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	return r.listPlans(ctx, `SELECT `+planColumns+` FROM plans ORDER BY created_at DESC, id`)
}

// ListByGoal returns plan headers for a goal, newest first.
func (r *SQLitePlanRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.Plan, error) {
	return r.listPlans(ctx, `SELECT `+planColumns+` FROM plans WHERE goal_id = ? ORDER BY created_at DESC, id`, goalID)
}

func (r *SQLitePlanRepo) listPlans(ctx context.Context, query string, args ...any) ([]*domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *SQLitePlanRepo) GetWeek(ctx context.Context, planID string, weekNumber int) (*domain.WeekPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+weekPlanColumns+` FROM week_plans WHERE plan_id = ? AND week_number = ?`,
		planID, weekNumber)
	w, err := scanWeekPlan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("week %d of plan %s: %w", weekNumber, planID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning week plan: %w", err)
	}
	w.Tasks, err = r.listTasks(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Delete removes the plan; weeks, tasks and scheduled tasks cascade.
func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return requireAffected(res, "plan", id)
}

func (r *SQLitePlanRepo) listWeeks(ctx context.Context, planID string) ([]domain.WeekPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+weekPlanColumns+` FROM week_plans WHERE plan_id = ? ORDER BY week_number`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing week plans: %w", err)
	}
	defer rows.Close()

	var weeks []domain.WeekPlan
	for rows.Next() {
		w, err := scanWeekPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning week plan: %w", err)
		}
		weeks = append(weeks, *w)
	}
	return weeks, rows.Err()
}

func (r *SQLitePlanRepo) listTasks(ctx context.Context, weekPlanID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+weekTaskColumns+` FROM week_tasks WHERE week_plan_id = ? ORDER BY order_index`, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("listing week tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning week task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func scanPlan(s scanner) (*domain.Plan, error) {
	var p domain.Plan
	var goalID sql.NullString
	var startDate, source, createdAt string
	if err := s.Scan(
		&p.ID,
		&goalID,
		&p.Title,
		&startDate,
		&p.WeekCount,
		&source,
		&createdAt,
	); err != nil {
		return nil, err
	}
	p.GoalID = goalID.String
	p.Source = domain.PlanSource(source)
	p.StartDate, _ = time.Parse(dateLayout, startDate)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}

func scanWeekPlan(s scanner) (*domain.WeekPlan, error) {
	var w domain.WeekPlan
	var startDate, endDate, milestones string
	if err := s.Scan(
		&w.ID,
		&w.PlanID,
		&w.WeekNumber,
		&startDate,
		&endDate,
		&milestones,
		&w.TaskCountHint,
		&w.EstimatedHoursHint,
	); err != nil {
		return nil, err
	}
	w.StartDate, _ = time.Parse(dateLayout, startDate)
	w.EndDate, _ = time.Parse(dateLayout, endDate)
	var err error
	if w.Milestones, err = decodeList(milestones); err != nil {
		return nil, err
	}
	return &w, nil
}

func scanTask(s scanner) (*domain.Task, error) {
	var t domain.Task
	var seconds int64
	var difficulty, weekdays, slots, deps string
	if err := s.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Quantity,
		&t.DurationLabel,
		&seconds,
		&difficulty,
		&weekdays,
		&slots,
		&deps,
	); err != nil {
		return nil, err
	}
	t.EstimatedDuration = time.Duration(seconds) * time.Second
	t.Difficulty = domain.Difficulty(difficulty)
	var err error
	if t.PreferredWeekdays, err = parseWeekdayCodes(weekdays); err != nil {
		return nil, err
	}
	if t.PreferredTimeSlots, err = decodeList(slots); err != nil {
		return nil, err
	}
	if t.Dependencies, err = decodeList(deps); err != nil {
		return nil, err
	}
	return &t, nil
}

// formatWeekdayCodes stores weekdays as "2,4,6".
func formatWeekdayCodes(days []domain.Weekday) string {
	codes := make([]string, len(days))
	for i, d := range days {
		codes[i] = strconv.Itoa(int(d))
	}
	return strings.Join(codes, ",")
}

func parseWeekdayCodes(s string) ([]domain.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	var out []domain.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil || !domain.Weekday(n).Valid() {
			return nil, fmt.Errorf("invalid stored weekday %q", part)
		}
		out = append(out, domain.Weekday(n))
	}
	return out, nil
}
