package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const envTheme = "RUNBOX_THEME"

type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto"
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// Theme holds the handful of colors the box and summary use. Auto mode
// resolves light/dark per terminal background; forcing a mode pins it.
type Theme struct {
	Mode ThemeMode

	TextMuted  lipgloss.TerminalColor
	TextStrong lipgloss.TerminalColor

	Accent lipgloss.TerminalColor
	Border lipgloss.TerminalColor

	AccentCyan   lipgloss.TerminalColor
	AccentYellow lipgloss.TerminalColor
	AccentGreen  lipgloss.TerminalColor
	Danger       lipgloss.TerminalColor
}

var theme = loadTheme()

func loadTheme() Theme {
	mode := parseThemeMode(os.Getenv(envTheme))

	if mode == ThemeDark {
		lipgloss.SetHasDarkBackground(true)
	} else if mode == ThemeLight {
		lipgloss.SetHasDarkBackground(false)
	}

	return newTheme(mode)
}

func parseThemeMode(value string) ThemeMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return ThemeDark
	case "light":
		return ThemeLight
	default:
		return ThemeAuto
	}
}

func newTheme(mode ThemeMode) Theme {
	return Theme{
		Mode:         mode,
		TextMuted:    pickColor(mode, "#6B7394", "#B6B8C9"),
		TextStrong:   pickColor(mode, "#0B0D19", "#F8F8F2"),
		Accent:       pickColor(mode, "#6C63FF", "#A78BFA"),
		Border:       pickColor(mode, "#D7DBF5", "#44475A"),
		AccentCyan:   lipgloss.Color("#8BE9FD"),
		AccentYellow: lipgloss.Color("#F1FA8C"),
		AccentGreen:  lipgloss.Color("#50FA7B"),
		Danger:       lipgloss.Color("#FF5555"),
	}
}

func pickColor(mode ThemeMode, light, dark string) lipgloss.TerminalColor {
	switch mode {
	case ThemeDark:
		return lipgloss.Color(dark)
	case ThemeLight:
		return lipgloss.Color(light)
	default:
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}
}
