package db

import "fmt"

// migrate runs all database migrations
func (db *DB) migrate() error {
	migrations := []string{
		migrationCreateEvents,
		migrationCreateDateIndex,
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

// Times are stored as TEXT: dates as YYYY-MM-DD, clock times as HH:MM and
// timestamps as RFC3339, set by the store code. Both forms sort
// chronologically as plain strings, which the list queries rely on.
const migrationCreateEvents = `
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    color TEXT NOT NULL DEFAULT '#1a73e8',
    is_recurring BOOLEAN NOT NULL DEFAULT FALSE,
    recurrence_rule TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

const migrationCreateDateIndex = `
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
`
