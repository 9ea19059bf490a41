package commands

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#D946EF")
	success = lipgloss.Color("#10B981")
	muted   = lipgloss.Color("#94A3B8")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(success)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	valueStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(accent)
)
