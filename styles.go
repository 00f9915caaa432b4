package main

import "github.com/charmbracelet/lipgloss"

var (
	subtle     = theme.TextMuted
	textStrong = theme.TextStrong

	borderStyle = lipgloss.NewStyle().
			Foreground(theme.Border)

	titleStyle = lipgloss.NewStyle().
			Foreground(textStrong).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true)

	// Captured lines keep the two origins visually apart without shouting.
	stdoutLineStyle = lipgloss.NewStyle().
			Foreground(theme.AccentCyan).
			Faint(true)

	stderrLineStyle = lipgloss.NewStyle().
			Foreground(theme.AccentYellow).
			Faint(true)

	successStyle = lipgloss.NewStyle().
			Foreground(theme.AccentGreen).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(theme.Danger).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(subtle)
)
