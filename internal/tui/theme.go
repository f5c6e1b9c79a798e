// Package tui holds the terminal styling shared by skillpack commands.
// Styles degrade to plain text when output is not a terminal.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color palette.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorSuccess = lipgloss.Color("#10B981") // Green (installed)
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Amber
)

// Shared styles.
var (
	// Category header: "OpenCode skills: <src> -> <dest>"
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Installed item / summary lines.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// Skipped categories.
	WarningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// Paths, descriptions.
	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Truncate shortens s to width terminal cells, ending with an ellipsis.
// A width of zero or less disables truncation.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
