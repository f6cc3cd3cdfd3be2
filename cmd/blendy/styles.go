package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the CLI and console.
var (
	// Result styles.
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red

	// Tool listing styles.
	toolNameStyle = lipgloss.NewStyle().Bold(true)
	toolDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // dim gray

	// Console styles.
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))            // magenta
)
