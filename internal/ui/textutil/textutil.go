// Package textutil fits field labels into fixed-width terminal columns.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a label cut short.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Fit returns s cut or padded to exactly width columns. Wide runes count
// double; a cut label ends in Ellipsis.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) > width {
		s = runewidth.Truncate(s, width, Ellipsis)
	}
	return runewidth.FillRight(s, width)
}
