package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		subject     TEXT NOT NULL DEFAULT '',
		target_date TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		goal_id    TEXT REFERENCES goals(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		start_date TEXT NOT NULL,
		week_count INTEGER NOT NULL DEFAULT 0,
		source     TEXT NOT NULL CHECK(source IN ('generated','imported')),
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS week_plans (
		id                   TEXT PRIMARY KEY,
		plan_id              TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		week_number          INTEGER NOT NULL CHECK(week_number >= 1),
		start_date           TEXT NOT NULL,
		end_date             TEXT NOT NULL,
		milestones           TEXT NOT NULL DEFAULT '[]',
		task_count_hint      INTEGER NOT NULL DEFAULT 0,
		estimated_hours_hint REAL NOT NULL DEFAULT 0,
		UNIQUE(plan_id, week_number)
	)`,

	`CREATE TABLE IF NOT EXISTS week_tasks (
		id                     TEXT PRIMARY KEY,
		week_plan_id           TEXT NOT NULL REFERENCES week_plans(id) ON DELETE CASCADE,
		order_index            INTEGER NOT NULL DEFAULT 0,
		title                  TEXT NOT NULL,
		description            TEXT NOT NULL DEFAULT '',
		quantity               TEXT NOT NULL DEFAULT '',
		duration_label         TEXT NOT NULL DEFAULT '',
		estimated_duration_sec INTEGER NOT NULL CHECK(estimated_duration_sec >= 0),
		difficulty             TEXT NOT NULL CHECK(difficulty IN ('easy','medium','hard')),
		preferred_weekdays     TEXT NOT NULL DEFAULT '',
		preferred_time_slots   TEXT NOT NULL DEFAULT '[]',
		dependencies           TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS scheduled_tasks (
		id               TEXT PRIMARY KEY,
		source_task_id   TEXT NOT NULL,
		goal_id          TEXT,
		plan_id          TEXT,
		week_plan_id     TEXT REFERENCES week_plans(id) ON DELETE CASCADE,
		week_number      INTEGER NOT NULL DEFAULT 0,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		quantity         TEXT NOT NULL DEFAULT '',
		duration_label   TEXT NOT NULL DEFAULT '',
		difficulty       TEXT NOT NULL CHECK(difficulty IN ('easy','medium','hard')),
		part             INTEGER NOT NULL DEFAULT 1,
		parts            INTEGER NOT NULL DEFAULT 1,
		scheduled_start  TEXT NOT NULL,
		scheduled_end    TEXT NOT NULL,
		status           TEXT NOT NULL DEFAULT 'pending'
		                 CHECK(status IN ('pending','done','skipped')),
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_settings (
		id                INTEGER PRIMARY KEY CHECK(id = 1),
		selected_weekdays TEXT NOT NULL DEFAULT '',
		earliest_start    TEXT,
		latest_end        TEXT,
		timezone          TEXT NOT NULL DEFAULT '',
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_goal ON plans(goal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_week_plans_plan ON week_plans(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_week_tasks_week ON week_tasks(week_plan_id, order_index)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_tasks_start ON scheduled_tasks(scheduled_start)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_tasks_week ON scheduled_tasks(week_plan_id)`,
}
