package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/ironcal/internal/client"
	"github.com/existflow/ironcal/internal/config"
	"github.com/existflow/ironcal/internal/logger"
	"github.com/existflow/ironcal/internal/model"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddEvent
	ModeConfirmDelete
	ModeHelp
)

// Add-form field order
const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldLocation
	fieldCount
)

// Model is the main TUI model
type Model struct {
	api *client.Client
	cfg *config.Config

	date   time.Time // selected day
	events []model.Event
	stats  model.Stats

	// UI state
	width  int
	height int
	mode   Mode
	cursor int

	// Add-event form
	inputs []textinput.Model
	focus  int
	// forceAdd is set after an overlap warning so the next save skips
	// the overlap check.
	forceAdd bool

	message string
}

// NewModel creates a new TUI model
func NewModel(api *client.Client, cfg *config.Config) Model {
	logger.Info("Initializing TUI model")

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "Title"
	inputs[fieldStart].Placeholder = "Start (HH:MM)"
	inputs[fieldEnd].Placeholder = "End (HH:MM)"
	inputs[fieldLocation].Placeholder = "Location (optional)"

	m := Model{
		api:    api,
		cfg:    cfg,
		date:   time.Now(),
		mode:   ModeNormal,
		inputs: inputs,
	}

	m.loadDay()
	logger.Debug("TUI model initialized", logger.F("events", len(m.events)))
	return m
}

// selectedDate returns the selected day as YYYY-MM-DD
func (m *Model) selectedDate() string {
	return m.date.Format(model.DateLayout)
}

// loadDay fetches the selected day's events and the calendar stats
func (m *Model) loadDay() {
	events, err := m.api.EventsOnDate(m.selectedDate())
	if err != nil {
		logger.Error("Failed to load events", logger.F("error", err))
		m.message = "Cannot reach server: " + err.Error()
		m.events = nil
		return
	}
	m.events = events

	if m.cursor >= len(m.events) {
		m.cursor = 0
	}

	if stats, err := m.api.Stats(); err == nil {
		m.stats = stats
	}
}

func (m *Model) currentEvent() *model.Event {
	if m.cursor < len(m.events) {
		return &m.events[m.cursor]
	}
	return nil
}
