// Package schedule decides whether a proposed time range collides with
// events already on the calendar.
package schedule

import (
	"context"

	"github.com/existflow/ironcal/internal/model"
)

// Lister supplies the events stored on a single date, optionally leaving
// out one event by id. The store layer implements it.
type Lister interface {
	EventsOnDate(ctx context.Context, date, excludeID string) ([]model.Event, error)
}

// HasConflict reports whether [startTime, endTime) on date overlaps any
// existing event on that date. excludeID removes an event from the
// comparison set, used when checking an event against itself during
// update. Intervals that only touch (one ends exactly when the other
// starts) do not conflict.
func HasConflict(ctx context.Context, l Lister, date, startTime, endTime, excludeID string) (bool, error) {
	events, err := l.EventsOnDate(ctx, date, excludeID)
	if err != nil {
		return false, err
	}

	start, err := model.ClockMinutes(startTime)
	if err != nil {
		return false, err
	}
	end, err := model.ClockMinutes(endTime)
	if err != nil {
		return false, err
	}

	for _, ev := range events {
		evStart, err := model.ClockMinutes(ev.StartTime)
		if err != nil {
			return false, err
		}
		evEnd, err := model.ClockMinutes(ev.EndTime)
		if err != nil {
			return false, err
		}

		if start < evEnd && end > evStart {
			return true, nil
		}
	}

	return false, nil
}
