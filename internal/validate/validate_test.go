package validate

import "testing"

func valid() Input {
	return Input{
		Title:     "Standup",
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "09:30",
	}
}

func TestNormalizeValid(t *testing.T) {
	out, err := Normalize(valid())
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out.StartTime != "09:00" || out.EndTime != "09:30" {
		t.Errorf("times = %q/%q, want 09:00/09:30", out.StartTime, out.EndTime)
	}
}

func TestNormalizeMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr string
	}{
		{"title", func(in *Input) { in.Title = "" }, "Missing required field: title"},
		{"date", func(in *Input) { in.Date = "" }, "Missing required field: date"},
		{"start_time", func(in *Input) { in.StartTime = "" }, "Missing required field: start_time"},
		{"end_time", func(in *Input) { in.EndTime = "" }, "Missing required field: end_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			if _, err := Normalize(in); err == nil || err.Error() != tt.wantErr {
				t.Errorf("Normalize() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeFirstFailureWins(t *testing.T) {
	// Everything missing: only the title error should be reported.
	_, err := Normalize(Input{})
	if err == nil || err.Error() != "Missing required field: title" {
		t.Errorf("Normalize() error = %v, want title error", err)
	}
}

func TestNormalizeDateFormat(t *testing.T) {
	tests := []struct {
		date string
		ok   bool
	}{
		{"2024-06-01", true},
		{"2024-02-29", true},  // leap year
		{"2024-02-30", false}, // not a real date
		{"2023-02-29", false},
		{"06-01-2024", false},
		{"2024/06/01", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		in := valid()
		in.Date = tt.date
		_, err := Normalize(in)
		if tt.ok && err != nil {
			t.Errorf("Normalize(date=%q) error = %v, want nil", tt.date, err)
		}
		if !tt.ok {
			want := "Invalid date format. Use YYYY-MM-DD"
			if err == nil || err.Error() != want {
				t.Errorf("Normalize(date=%q) error = %v, want %q", tt.date, err, want)
			}
		}
	}
}

func TestNormalizeTimeFormat(t *testing.T) {
	bad := []string{"25:00", "09:60", "9am", "0900", "09:0"}
	for _, s := range bad {
		in := valid()
		in.StartTime = s
		_, err := Normalize(in)
		want := "Invalid time format. Use HH:MM"
		if err == nil || err.Error() != want {
			t.Errorf("Normalize(start=%q) error = %v, want %q", s, err, want)
		}
	}

	in := valid()
	in.EndTime = "99:99"
	if _, err := Normalize(in); err == nil {
		t.Error("Normalize() accepted invalid end time")
	}
}

func TestNormalizeOrdering(t *testing.T) {
	tests := []struct {
		start, end string
		ok         bool
	}{
		{"09:00", "09:30", true},
		{"00:00", "23:59", true},
		{"09:00", "09:00", false}, // equal is not after
		{"10:00", "09:00", false},
		{"23:00", "00:30", false}, // no overnight spans
	}

	for _, tt := range tests {
		in := valid()
		in.StartTime = tt.start
		in.EndTime = tt.end
		_, err := Normalize(in)
		if tt.ok && err != nil {
			t.Errorf("Normalize(%s-%s) error = %v, want nil", tt.start, tt.end, err)
		}
		if !tt.ok {
			want := "End time must be after start time"
			if err == nil || err.Error() != want {
				t.Errorf("Normalize(%s-%s) error = %v, want %q", tt.start, tt.end, err, want)
			}
		}
	}
}

func TestNormalizeAlternateKeys(t *testing.T) {
	in := valid()
	in.StartTime = ""
	in.EndTime = ""
	in.StartTimeAlt = "10:00"
	in.EndTimeAlt = "11:00"

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out.StartTime != "10:00" || out.EndTime != "11:00" {
		t.Errorf("times = %q/%q, want 10:00/11:00", out.StartTime, out.EndTime)
	}
	if out.StartTimeAlt != "" || out.EndTimeAlt != "" {
		t.Error("alternate keys were not cleared on normalize")
	}
}

func TestNormalizeSnakeCaseWins(t *testing.T) {
	in := valid()
	in.StartTimeAlt = "22:00"
	in.EndTimeAlt = "23:00"

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out.StartTime != "09:00" || out.EndTime != "09:30" {
		t.Errorf("times = %q/%q, want snake_case values to win", out.StartTime, out.EndTime)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := valid()
	in.StartTime = ""
	in.StartTimeAlt = "10:00"
	before := in

	if _, err := Normalize(in); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if in != before {
		t.Error("Normalize() mutated its input")
	}
}

func TestNormalizePassthrough(t *testing.T) {
	in := valid()
	in.Description = "desc"
	in.Location = "room 4"
	in.Color = "#ff0000"
	in.IsRecurring = true
	in.RecurrenceRule = "weekly"
	in.EventID = "abc"

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out.Description != "desc" || out.Location != "room 4" || out.Color != "#ff0000" {
		t.Error("optional fields did not pass through")
	}
	if !out.IsRecurring || out.RecurrenceRule != "weekly" || out.EventID != "abc" {
		t.Error("recurrence/event_id fields did not pass through")
	}
}
