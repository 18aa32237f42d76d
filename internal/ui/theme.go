package ui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a2e")).
			Background(lipgloss.Color("#e6c07b")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a2e")).
			Background(lipgloss.Color("#98c379"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#abb2bf"))

	verseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e5e5e5"))

	refStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e6c07b"))

	markStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e06c75"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e06c75"))
)
