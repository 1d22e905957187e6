package tui

import "github.com/charmbracelet/lipgloss"

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Align(lipgloss.Right)

	expressionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	resultStyle     = lipgloss.NewStyle().Bold(true)
	errorStyle      = resultStyle.Foreground(lipgloss.Color("196"))
	infinityStyle   = resultStyle.Foreground(lipgloss.Color("214"))

	buttonStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238"))
	operatorStyle = buttonStyle.Foreground(lipgloss.Color("214"))
	equalsStyle   = buttonStyle.Foreground(lipgloss.Color("39"))
	clearStyle    = buttonStyle.Foreground(lipgloss.Color("196"))
	pressedStyle  = buttonStyle.BorderForeground(lipgloss.Color("229")).Bold(true)
)
