package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the dashboard panels.
const (
	ColorAccent    = "86"  // Cyan/green - titles, selected item
	ColorHighlight = "205" // Magenta - borders, sample chart
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - normal text
	ColorCount     = "220" // Yellow - counter value
	ColorGauge     = "42"  // Green - progress bar
)

// Styles contains shared style definitions used across panels.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - box titles
	Border   lipgloss.Style // Box border glyphs
	Selected lipgloss.Style // Highlighted list item
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	Count    lipgloss.Style // Counter value
	Spark    lipgloss.Style // Sample chart bars
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Border: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Count: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCount)),
	Spark: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
}
