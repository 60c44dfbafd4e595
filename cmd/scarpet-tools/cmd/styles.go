package cmd

import "github.com/charmbracelet/lipgloss"

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Width(16)

	posStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)
