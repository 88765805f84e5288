package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/existflow/ironcal/internal/model"
)

// memLister serves events from memory, filtered by date and exclusion id.
type memLister struct {
	events []model.Event
	err    error
}

func (m *memLister) EventsOnDate(_ context.Context, date, excludeID string) ([]model.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Event
	for _, ev := range m.events {
		if ev.Date != date {
			continue
		}
		if excludeID != "" && ev.ID == excludeID {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func event(id, date, start, end string) model.Event {
	return model.Event{ID: id, Date: date, StartTime: start, EndTime: end}
}

func TestHasConflict(t *testing.T) {
	lister := &memLister{events: []model.Event{
		event("a", "2024-06-01", "09:00", "10:00"),
		event("b", "2024-06-01", "13:00", "14:00"),
	}}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"overlapping middle", "09:30", "09:45", true},
		{"overlapping tail", "09:30", "10:30", true},
		{"overlapping head", "08:30", "09:15", true},
		{"enclosing", "08:00", "11:00", true},
		{"touching end-to-start", "10:00", "11:00", false},
		{"touching start-to-end", "08:00", "09:00", false},
		{"free slot", "10:30", "12:00", false},
		{"second event hit", "13:30", "15:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HasConflict(context.Background(), lister, "2024-06-01", tt.start, tt.end, "")
			if err != nil {
				t.Fatalf("HasConflict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HasConflict(%s-%s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestHasConflictOtherDate(t *testing.T) {
	lister := &memLister{events: []model.Event{
		event("a", "2024-06-01", "09:00", "10:00"),
	}}

	got, err := HasConflict(context.Background(), lister, "2024-06-02", "09:00", "10:00", "")
	if err != nil {
		t.Fatalf("HasConflict() error = %v", err)
	}
	if got {
		t.Error("events on a different date must not conflict")
	}
}

func TestHasConflictExcludesSelf(t *testing.T) {
	lister := &memLister{events: []model.Event{
		event("a", "2024-06-01", "09:00", "10:00"),
	}}

	got, err := HasConflict(context.Background(), lister, "2024-06-01", "09:00", "10:00", "a")
	if err != nil {
		t.Fatalf("HasConflict() error = %v", err)
	}
	if got {
		t.Error("an event excluded by id must not conflict with itself")
	}

	// Excluding a different id still detects the overlap.
	got, err = HasConflict(context.Background(), lister, "2024-06-01", "09:30", "10:30", "other")
	if err != nil {
		t.Fatalf("HasConflict() error = %v", err)
	}
	if !got {
		t.Error("overlap with a non-excluded event was not detected")
	}
}

func TestHasConflictEmptyDay(t *testing.T) {
	got, err := HasConflict(context.Background(), &memLister{}, "2024-06-01", "09:00", "10:00", "")
	if err != nil {
		t.Fatalf("HasConflict() error = %v", err)
	}
	if got {
		t.Error("empty day must not conflict")
	}
}

func TestHasConflictListerError(t *testing.T) {
	boom := errors.New("store down")
	_, err := HasConflict(context.Background(), &memLister{err: boom}, "2024-06-01", "09:00", "10:00", "")
	if !errors.Is(err, boom) {
		t.Errorf("HasConflict() error = %v, want %v", err, boom)
	}
}
