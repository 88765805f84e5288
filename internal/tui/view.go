package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	agenda := m.renderAgenda()
	statusBar := m.renderStatusBar()

	mainContent := agenda

	if m.mode == ModeAddEvent {
		modal := m.renderAddModal()
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeConfirmDelete {
		modal := m.renderDeleteModal()
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeHelp {
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

func (m Model) renderAgenda() string {
	width := m.width - 2
	var s string

	// Header: "IronCal   Saturday, 01 Jun 2024"
	day := m.date.Format("Monday, 02 Jan 2006")
	s += HeaderStyle.Render("IronCal") + "  " + lipgloss.NewStyle().Bold(true).Render(day) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width-4, 0))) + "\n\n"

	if len(m.events) == 0 {
		s += HelpStyle.Render("  No events. Press 'a' to add one.")
	}

	for i, ev := range m.events {
		cursor := "  "
		style := EventItemStyle
		if i == m.cursor {
			cursor = "❯ "
			style = EventItemSelectedStyle
		}

		bullet := lipgloss.NewStyle().Foreground(lipgloss.Color(ev.Color)).Render("●")
		times := TimeStyle.Render(fmt.Sprintf("%s-%s", ev.StartTime, ev.EndTime))
		title := truncate(ev.Title, max(width-40, 10))

		line := fmt.Sprintf("%s%s %s  %s", cursor, bullet, times, title)
		if ev.Location != "" {
			line += HelpStyle.Render("  @ " + truncate(ev.Location, 20))
		}
		s += style.Render(line) + "\n"
	}

	return AgendaStyle.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderStatusBar() string {
	help := "h/l:day  t:today  j/k:move  a:add  d:del  r:refresh  ?:help  q:quit"
	if m.message != "" {
		help = m.message
	}

	stats := fmt.Sprintf("%d total / %d today / %d upcoming",
		m.stats.TotalEvents, m.stats.TodayEvents, m.stats.UpcomingEvents)

	avail := m.width - lipgloss.Width(help) - len(stats) - 2
	if avail > 0 {
		help += strings.Repeat(" ", avail) + stats
	}

	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderAddModal() string {
	title := fmt.Sprintf("Add Event - %s", m.selectedDate())

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	for i := range m.inputs {
		content += m.inputs[i].View() + "\n"
	}
	content += "\n"
	if m.forceAdd {
		content += WarningStyle.Render(m.message) + "\n\n"
	}
	content += HelpStyle.Render("Tab:next field  Enter:save  Esc:cancel")

	return ModalStyle.Render(content)
}

func (m Model) renderDeleteModal() string {
	ev := m.currentEvent()
	if ev == nil {
		return ""
	}

	content := DangerStyle.Render("Delete Event") + "\n\n"
	content += fmt.Sprintf("%q on %s %s-%s\n\n", ev.Title, ev.Date, ev.StartTime, ev.EndTime)
	content += HelpStyle.Render("y:delete  any other key:cancel")

	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭─── Keyboard Shortcuts ───╮
│                          │
│  Navigation              │
│  ──────────              │
│  h/←    Previous day     │
│  l/→    Next day         │
│  t      Jump to today    │
│  j/↓    Move down        │
│  k/↑    Move up          │
│                          │
│  Actions                 │
│  ───────                 │
│  a      Add event        │
│  d      Delete event     │
│  r      Refresh          │
│                          │
│  Other                   │
│  ─────                   │
│  ?      Toggle help      │
│  q      Quit             │
│                          │
╰──────────────────────────╯

     Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}
