package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds all schema statements in execution order. Statements are
// written to be re-runnable: CREATE ... IF NOT EXISTS throughout, and ALTER
// TABLE duplicates are tolerated by Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		code       TEXT NOT NULL DEFAULT '',
		active     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		job_id     TEXT NOT NULL REFERENCES jobs(id),
		name       TEXT NOT NULL,
		pay_rate   REAL NOT NULL DEFAULT 0 CHECK(pay_rate >= 0),
		pay_unit   TEXT NOT NULL DEFAULT 'hour',
		sort_order INTEGER NOT NULL DEFAULT 0,
		active     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_entries (
		id                 TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL,
		job_id             TEXT NOT NULL REFERENCES jobs(id),
		task_id            TEXT NOT NULL REFERENCES tasks(id),
		clock_in           TEXT NOT NULL,
		clock_out          TEXT,
		duration_seconds   INTEGER,
		pay_rate_at_time   REAL NOT NULL,
		job_label_at_time  TEXT NOT NULL,
		task_label_at_time TEXT NOT NULL,
		note               TEXT NOT NULL DEFAULT '',
		gross_pay          REAL,
		created_at         TEXT NOT NULL,
		CHECK (clock_out IS NULL OR clock_out >= clock_in)
	)`,

	// Authoritative one-open-entry-per-user guarantee. Concurrent clock-ins
	// from other sessions hit this index, not a client-side check.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_time_entries_open
		ON time_entries(user_id) WHERE clock_out IS NULL`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_user_recent
		ON time_entries(user_id, clock_in DESC)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_job ON tasks(job_id, sort_order)`,
}

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
