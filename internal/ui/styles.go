package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the focused field
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for fields outside the group
)

// Styles contains shared style definitions used by the form and app views.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - form title
	Status  lipgloss.Style // Controller state line
	Error   lipgloss.Style // Startup or config errors
	Section lipgloss.Style // Section headers

	Label        lipgloss.Style // Field label
	LabelFocused lipgloss.Style // Label of the focused field
	Order        lipgloss.Style // tabindex / position annotation
	Outside      lipgloss.Style // Annotation for fields not in the group
	Marker       lipgloss.Style // Focus marker

	Hint lipgloss.Style // Help/hint text
	Box  lipgloss.Style // Help box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	LabelFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Order: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Outside: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true),
	Marker: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
}
