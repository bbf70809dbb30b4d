// Package style provides the colors, icons and text styles shared by the CLI and the logger.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Text styles for command output.
var (
	Hit   = lipgloss.NewStyle().Foreground(Green)
	Miss  = lipgloss.NewStyle().Foreground(Yellow)
	Muted = lipgloss.NewStyle().Foreground(Slate)
	Key   = lipgloss.NewStyle().Foreground(Iris).Bold(true)
)

// Verdict renders a hit or miss marker followed by label.
func Verdict(hit bool, label string) string {
	if hit {
		return Hit.Render(Check + " " + label)
	}
	return Miss.Render(Circle + " " + label)
}
