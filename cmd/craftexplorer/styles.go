package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")
	borderColor  = lipgloss.Color("#383838")

	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginBottom(1)

	// Tree pane
	treeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Background(primaryColor).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7FF"))

	opaqueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	containerStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	modifiedStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Status bar
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// Input line shown while editing or appending
	inputLabelStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Help overlay
	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)
