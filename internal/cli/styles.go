package cli

import "github.com/charmbracelet/lipgloss"

// Shared style definitions for list and watch output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("166")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("166")).
			MarginBottom(1)

	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	handledStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Strikethrough(true)
	expiredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	celebrationStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("226"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
