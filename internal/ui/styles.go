package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Base styles
	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// Header styles
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Underline(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	// Data styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true).
				PaddingLeft(1).
				PaddingRight(1)

	TableRowStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	SelectedRowStyle = TableRowStyle.
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")).
				Bold(true)
)
