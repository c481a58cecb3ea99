package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The table and column names mirror the hosted backend export so imported
// rows map one to one.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id         TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT 'employee'
		           CHECK(role IN ('employee','admin')),
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_email ON employees(email) WHERE email != ''`,

	// entry_type is deliberately unconstrained: the log is mirrored as
	// recorded and unknown kinds are rejected when hours are computed.
	`CREATE TABLE IF NOT EXISTS time_entries (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		entry_type TEXT NOT NULL,
		timestamp  TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_user_ts ON time_entries(user_id, timestamp)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL,
		customer_name        TEXT NOT NULL DEFAULT '',
		description          TEXT NOT NULL DEFAULT '',
		status               TEXT NOT NULL DEFAULT 'pending',
		special_compensation REAL,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS task_assignments (
		id             TEXT PRIMARY KEY,
		task_id        TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		user_id        TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		progress_notes TEXT NOT NULL DEFAULT '',
		assigned_at    TEXT NOT NULL,
		UNIQUE (task_id, user_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_assignments_user ON task_assignments(user_id)`,
}
