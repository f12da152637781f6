package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#1DB954")
	colorMuted   = lipgloss.Color("#6B6B6B")
	colorBorder  = lipgloss.Color("#3A3A3A")
	colorError   = lipgloss.Color("#E53935")
	colorInfo    = lipgloss.Color("#2196F3")
	colorTagText = lipgloss.Color("#A5D6A7")

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.BorderForeground(colorAccent)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	itemStyle = lipgloss.NewStyle()

	tagStyle = lipgloss.NewStyle().
			Foreground(colorTagText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	successStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	spinnerStyle = lipgloss.NewStyle().Foreground(colorAccent)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
