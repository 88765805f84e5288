package model

import (
	"fmt"
	"time"
)

// DefaultColor is the color assigned to events created without one.
const DefaultColor = "#1a73e8"

// Wire formats for calendar dates and clock times.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event represents a single scheduled calendar entry.
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`       // YYYY-MM-DD
	StartTime      string    `json:"start_time"` // HH:MM
	EndTime        string    `json:"end_time"`   // HH:MM
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Color          string    `json:"color"`
	IsRecurring    bool      `json:"is_recurring"`
	RecurrenceRule string    `json:"recurrence_rule"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Stats holds aggregate event counts relative to a reference date.
type Stats struct {
	TotalEvents    int `json:"total_events"`
	TodayEvents    int `json:"today_events"`
	UpcomingEvents int `json:"upcoming_events"`
}

// ClockMinutes converts an HH:MM clock time to minutes since midnight.
func ClockMinutes(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
