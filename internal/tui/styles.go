package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary   = lipgloss.Color("#4ECDC4")
	Warning   = lipgloss.Color("#FFB347")
	Danger    = lipgloss.Color("#FF6B6B")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	AgendaStyle = lipgloss.NewStyle().
			Padding(1, 2)

	EventItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	EventItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	TimeStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)
