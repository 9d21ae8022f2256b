// Package themes defines the visual styles for the dashboard.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Income     lipgloss.Style
	Expense    lipgloss.Style
	Warning    lipgloss.Style
	Positive   lipgloss.Style
	Box        lipgloss.Style
	GradientLo string
	GradientHi string
}

// Light is the default theme.
var Light = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2563eb")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#525252")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#171717")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Income: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#059669")),
	Expense: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#dc2626")),
	Warning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#b45309")),
	Positive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#059669")),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#d4d4d4")).
		Padding(1, 2),
	GradientLo: "#93c5fd",
	GradientHi: "#2563eb",
}

// Dark mirrors Light on a dark background.
var Dark = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#60a5fa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Income: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34d399")),
	Expense: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f87171")),
	Warning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fbbf24")),
	Positive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34d399")),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	GradientLo: "#1d4ed8",
	GradientHi: "#60a5fa",
}

// ForName returns the theme for a persisted theme name, defaulting to Light.
func ForName(name string) Theme {
	if name == "dark" {
		return Dark
	}
	return Light
}
