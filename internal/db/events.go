package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/existflow/ironcal/internal/model"
)

// ErrNotFound is returned when an event id does not resolve.
var ErrNotFound = errors.New("event not found")

const eventColumns = `id, title, date, start_time, end_time, description, location, color,
	is_recurring, recurrence_rule, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.Event, error) {
	var ev model.Event
	var createdAt, updatedAt string

	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Date, &ev.StartTime, &ev.EndTime,
		&ev.Description, &ev.Location, &ev.Color,
		&ev.IsRecurring, &ev.RecurrenceRule,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Event{}, err
	}

	if ev.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return model.Event{}, fmt.Errorf("bad created_at for event %s: %w", ev.ID, err)
	}
	if ev.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return model.Event{}, fmt.Errorf("bad updated_at for event %s: %w", ev.ID, err)
	}

	return ev, nil
}

func (db *DB) queryEvents(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := db.QueryContext(ctx, db.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CreateEvent inserts a new event and stamps created_at/updated_at.
func (db *DB) CreateEvent(ctx context.Context, ev *model.Event) error {
	now := time.Now().UTC().Truncate(time.Second)
	ev.CreatedAt = now
	ev.UpdatedAt = now

	_, err := db.ExecContext(ctx, db.rebind(`
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		ev.ID, ev.Title, ev.Date, ev.StartTime, ev.EndTime,
		ev.Description, ev.Location, ev.Color,
		ev.IsRecurring, ev.RecurrenceRule,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent returns a single event by id.
func (db *DB) GetEvent(ctx context.Context, id string) (model.Event, error) {
	row := db.QueryRowContext(ctx,
		db.rebind(`SELECT `+eventColumns+` FROM events WHERE id = ?`), id)

	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, ErrNotFound
	}
	return ev, err
}

// UpdateEvent replaces all mutable fields of an existing event and
// refreshes updated_at. created_at is left untouched.
func (db *DB) UpdateEvent(ctx context.Context, ev *model.Event) error {
	now := time.Now().UTC().Truncate(time.Second)
	ev.UpdatedAt = now

	res, err := db.ExecContext(ctx, db.rebind(`
		UPDATE events
		SET title = ?, date = ?, start_time = ?, end_time = ?,
		    description = ?, location = ?, color = ?,
		    is_recurring = ?, recurrence_rule = ?, updated_at = ?
		WHERE id = ?`),
		ev.Title, ev.Date, ev.StartTime, ev.EndTime,
		ev.Description, ev.Location, ev.Color,
		ev.IsRecurring, ev.RecurrenceRule,
		now.Format(time.RFC3339), ev.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEvent permanently removes an event.
func (db *DB) DeleteEvent(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, db.rebind(`DELETE FROM events WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListEvents returns all events ordered by date then start time.
func (db *DB) ListEvents(ctx context.Context) ([]model.Event, error) {
	return db.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY date, start_time`)
}

// ListEventsInRange returns events with date between startDate and
// endDate, inclusive on both ends.
func (db *DB) ListEventsInRange(ctx context.Context, startDate, endDate string) ([]model.Event, error) {
	return db.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events WHERE date >= ? AND date <= ? ORDER BY date, start_time`,
		startDate, endDate)
}

// EventsOnDate returns the events on a single date ordered by start time,
// optionally excluding one event by id. It is the conflict checker's
// store collaborator.
func (db *DB) EventsOnDate(ctx context.Context, date, excludeID string) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE date = ?`
	args := []any{date}

	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}
	query += ` ORDER BY start_time`

	return db.queryEvents(ctx, query, args...)
}

// Stats returns aggregate counts relative to today (YYYY-MM-DD).
func (db *DB) Stats(ctx context.Context, today string) (model.Stats, error) {
	var stats model.Stats

	row := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`)
	if err := row.Scan(&stats.TotalEvents); err != nil {
		return model.Stats{}, err
	}

	row = db.QueryRowContext(ctx, db.rebind(`SELECT COUNT(*) FROM events WHERE date = ?`), today)
	if err := row.Scan(&stats.TodayEvents); err != nil {
		return model.Stats{}, err
	}

	row = db.QueryRowContext(ctx, db.rebind(`SELECT COUNT(*) FROM events WHERE date > ?`), today)
	if err := row.Scan(&stats.UpcomingEvents); err != nil {
		return model.Stats{}, err
	}

	return stats, nil
}
