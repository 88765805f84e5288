// Package validate normalizes and checks raw event payloads before they
// reach the store or the conflict checker.
package validate

import (
	"errors"
	"time"

	"github.com/existflow/ironcal/internal/model"
)

// Input is a raw event payload as received from a client. The frontend
// historically sent startTime/endTime while the API documents
// start_time/end_time, so both spellings are accepted.
type Input struct {
	Title          string `json:"title"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	StartTimeAlt   string `json:"startTime,omitempty"`
	EndTimeAlt     string `json:"endTime,omitempty"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Color          string `json:"color"`
	IsRecurring    bool   `json:"is_recurring"`
	RecurrenceRule string `json:"recurrence_rule"`

	// EventID is only used by the conflict-check endpoint to exclude
	// an event from its own overlap set.
	EventID string `json:"event_id,omitempty"`
}

// Normalize validates in and returns a copy with the start/end times
// resolved to the canonical snake_case pair. It never mutates its
// argument; all other fields pass through unchanged. Error messages are
// part of the API contract and must not change.
func Normalize(in Input) (Input, error) {
	start := in.StartTime
	if start == "" {
		start = in.StartTimeAlt
	}
	end := in.EndTime
	if end == "" {
		end = in.EndTimeAlt
	}

	if in.Title == "" {
		return Input{}, errors.New("Missing required field: title")
	}
	if in.Date == "" {
		return Input{}, errors.New("Missing required field: date")
	}
	if start == "" {
		return Input{}, errors.New("Missing required field: start_time")
	}
	if end == "" {
		return Input{}, errors.New("Missing required field: end_time")
	}

	if _, err := time.Parse(model.DateLayout, in.Date); err != nil {
		return Input{}, errors.New("Invalid date format. Use YYYY-MM-DD")
	}

	startMin, err := model.ClockMinutes(start)
	if err != nil {
		return Input{}, errors.New("Invalid time format. Use HH:MM")
	}
	endMin, err := model.ClockMinutes(end)
	if err != nil {
		return Input{}, errors.New("Invalid time format. Use HH:MM")
	}

	if endMin <= startMin {
		return Input{}, errors.New("End time must be after start time")
	}

	out := in
	out.StartTime = start
	out.EndTime = end
	out.StartTimeAlt = ""
	out.EndTimeAlt = ""
	return out, nil
}
