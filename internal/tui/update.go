package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/ironcal/internal/client"
	"github.com/existflow/ironcal/internal/logger"
	"github.com/existflow/ironcal/internal/validate"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddEvent:
			return m.updateAddForm(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.events)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.PrevDay):
		m.date = m.date.AddDate(0, 0, -1)
		m.cursor = 0
		m.message = ""
		m.loadDay()

	case key.Matches(msg, keys.NextDay):
		m.date = m.date.AddDate(0, 0, 1)
		m.cursor = 0
		m.message = ""
		m.loadDay()

	case key.Matches(msg, keys.Today):
		m.date = time.Now()
		m.cursor = 0
		m.message = ""
		m.loadDay()

	case key.Matches(msg, keys.Refresh):
		m.loadDay()
		m.message = "Refreshed"

	case key.Matches(msg, keys.Add):
		m.openAddForm()
		return m, textinput.Blink

	case key.Matches(msg, keys.Delete):
		if m.currentEvent() == nil {
			break
		}
		if m.cfg.ConfirmDelete {
			m.mode = ModeConfirmDelete
		} else {
			m.deleteCurrent()
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m *Model) openAddForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = fieldTitle
	m.inputs[m.focus].Focus()
	m.forceAdd = false
	m.message = ""
	m.mode = ModeAddEvent
}

// updateAddForm handles key presses inside the add-event form
func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.message = ""
		return m, nil

	case key.Matches(msg, keys.Enter):
		return m.submitAddForm()

	case msg.String() == "tab" || msg.String() == "down":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % fieldCount
		m.inputs[m.focus].Focus()
		return m, nil

	case msg.String() == "shift+tab" || msg.String() == "up":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		m.inputs[m.focus].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submitAddForm creates the event. The first save warns on overlapping
// slots; saving again forces the event in.
func (m Model) submitAddForm() (tea.Model, tea.Cmd) {
	in := validate.Input{
		Title:     m.inputs[fieldTitle].Value(),
		Date:      m.selectedDate(),
		StartTime: m.inputs[fieldStart].Value(),
		EndTime:   m.inputs[fieldEnd].Value(),
		Location:  m.inputs[fieldLocation].Value(),
	}

	warn := m.cfg.WarnOverlap && !m.forceAdd
	ev, err := m.api.CreateEvent(in, warn)
	if errors.Is(err, client.ErrOverlap) {
		m.forceAdd = true
		m.message = "Overlaps an existing event - press enter again to add anyway"
		return m, nil
	}
	if err != nil {
		m.forceAdd = false
		m.message = err.Error()
		return m, nil
	}

	logger.Info("Event created via TUI", logger.F("id", ev.ID))
	m.mode = ModeNormal
	m.message = "Added " + ev.Title
	m.loadDay()
	return m, nil
}

// updateConfirmDelete handles the delete confirmation prompt
func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.deleteCurrent()
	default:
		m.message = "Cancelled"
	}
	m.mode = ModeNormal
	return m, nil
}

func (m *Model) deleteCurrent() {
	ev := m.currentEvent()
	if ev == nil {
		return
	}

	if err := m.api.DeleteEvent(ev.ID); err != nil {
		logger.Error("Failed to delete event", logger.F("error", err))
		m.message = err.Error()
		return
	}

	m.message = "Deleted " + ev.Title
	m.loadDay()
}
