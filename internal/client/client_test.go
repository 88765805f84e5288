package client

import (
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/existflow/ironcal/internal/db"
	"github.com/existflow/ironcal/internal/validate"
	"github.com/existflow/ironcal/server"
)

// newTestClient wires a client to a real server over httptest.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "calendar.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	srv := server.New(database)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
	})
	return New(ts.URL)
}

func input(title, date, start, end string) validate.Input {
	return validate.Input{Title: title, Date: date, StartTime: start, EndTime: end}
}

func TestClientRoundTrip(t *testing.T) {
	c := newTestClient(t)

	ev, err := c.CreateEvent(input("Standup", "2024-06-01", "09:00", "09:30"), true)
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if ev.ID == "" {
		t.Fatal("no id assigned")
	}

	got, err := c.GetEvent(ev.ID)
	if err != nil {
		t.Fatalf("GetEvent() error = %v", err)
	}
	if got.Title != "Standup" {
		t.Errorf("title = %q", got.Title)
	}

	updated, err := c.UpdateEvent(ev.ID, input("Retro", "2024-06-01", "15:00", "16:00"), false)
	if err != nil {
		t.Fatalf("UpdateEvent() error = %v", err)
	}
	if updated.Title != "Retro" || updated.StartTime != "15:00" {
		t.Errorf("updated = %+v", updated)
	}

	events, err := c.EventsOnDate("2024-06-01")
	if err != nil {
		t.Fatalf("EventsOnDate() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}

	if err := c.DeleteEvent(ev.ID); err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}
	if _, err := c.GetEvent(ev.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEvent(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestClientOverlap(t *testing.T) {
	c := newTestClient(t)

	if _, err := c.CreateEvent(input("A", "2024-06-01", "09:00", "10:00"), true); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	_, err := c.CreateEvent(input("B", "2024-06-01", "09:30", "10:30"), true)
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("CreateEvent(overlap) error = %v, want ErrOverlap", err)
	}

	// Forcing past the warning works.
	if _, err := c.CreateEvent(input("B", "2024-06-01", "09:30", "10:30"), false); err != nil {
		t.Errorf("CreateEvent(forced) error = %v", err)
	}
}

func TestClientCheckConflict(t *testing.T) {
	c := newTestClient(t)

	ev, err := c.CreateEvent(input("A", "2024-06-01", "09:00", "10:00"), false)
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	probe := input("probe", "2024-06-01", "09:30", "10:30")
	conflict, err := c.CheckConflict(probe)
	if err != nil {
		t.Fatalf("CheckConflict() error = %v", err)
	}
	if !conflict {
		t.Error("expected conflict")
	}

	probe.EventID = ev.ID
	conflict, err = c.CheckConflict(probe)
	if err != nil {
		t.Fatalf("CheckConflict(exclude) error = %v", err)
	}
	if conflict {
		t.Error("expected no conflict with self excluded")
	}
}

func TestClientValidationError(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CreateEvent(input("A", "2024-06-01", "10:00", "09:00"), false)
	if err == nil || err.Error() != "End time must be after start time" {
		t.Errorf("error = %v, want server validation message", err)
	}
}

func TestClientStats(t *testing.T) {
	c := newTestClient(t)

	if _, err := c.CreateEvent(input("A", "2000-01-01", "09:00", "10:00"), false); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	stats, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalEvents != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
