package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	ampPanelW = 44 // width of the amplitude viewport
	barW      = 20 // maximum probability bar length
)

// Lipgloss styles used across the TUI.
var (
	programStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bb9af7")).
			Padding(0, 1)

	qubitStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7"))

	currentInstStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ff9e64")).
				Bold(true)

	doneInstStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bb9af7"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
