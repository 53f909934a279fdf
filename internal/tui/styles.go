package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = "#7C3AED"
	colorMuted  = "#6B7280"
	colorOK     = "#10B981"
	colorError  = "#EF4444"
)

var (
	barStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#1F2937")).
			Foreground(lipgloss.Color("#F9FAFB"))

	pillStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorAccent)).
			Padding(0, 1)

	logoLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent))
	logoSmall = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))

	activeLink = lipgloss.NewStyle().Underline(true).Bold(true)
	linkStyle  = lipgloss.NewStyle()
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOK))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorAccent)).
			Padding(1, 2)
)
