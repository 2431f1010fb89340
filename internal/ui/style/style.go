// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Violet = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Shared styles.
var (
	Active    = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Installed = lipgloss.NewStyle().Foreground(Violet)
	Available = lipgloss.NewStyle().Foreground(Slate)
	Header    = lipgloss.NewStyle().Bold(true)
)

// Icons.
const (
	Check  = "✓"
	Cross  = "✗"
	Dot    = "●"
	Circle = "○"
)
