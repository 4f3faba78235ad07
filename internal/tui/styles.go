package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#007AFF")).
			Padding(0, 1).
			MarginBottom(1)

	intakeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4FC3F7")).
			Bold(true)

	goalMetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#007AFF")).
			Padding(1, 2).
			MarginBottom(1)
)

func progressBar(percentage int, width int) string {
	percentage = min(100, max(0, percentage))
	filled := (percentage * width) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#007AFF")).Render(bar)
}

// dropGauge draws the fill level of the drop, level out of levels.
func dropGauge(level, levels int) string {
	return "💧 " + strings.Repeat("▰", level) + strings.Repeat("▱", levels-level)
}
