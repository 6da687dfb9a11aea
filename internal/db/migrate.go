package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedules (
		id           TEXT PRIMARY KEY,
		plan_name    TEXT NOT NULL,
		generated_at TEXT NOT NULL,
		start_date   TEXT NOT NULL,
		end_date     TEXT NOT NULL,
		payload      TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_created_at ON schedules(created_at)`,
	`CREATE TABLE IF NOT EXISTS command_history (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		entered_at TEXT NOT NULL,
		command    TEXT NOT NULL,
		kind       TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
