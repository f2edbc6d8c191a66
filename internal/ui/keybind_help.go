package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help model styled like the rest of the UI.
func newHelpModel() help.Model {
	m := help.New()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortKey = keyStyle
	m.Styles.ShortDesc = descStyle
	m.Styles.ShortSeparator = descStyle
	m.Styles.FullKey = keyStyle
	m.Styles.FullDesc = descStyle
	m.Styles.FullSeparator = descStyle
	return m
}

// RenderKeybindHelp renders km. The short form is a single hint line; the
// full form is boxed in columns.
func RenderKeybindHelp(m help.Model, km help.KeyMap, full bool) string {
	if km == nil {
		return ""
	}
	if !full {
		return m.ShortHelpView(km.ShortHelp())
	}
	content := m.FullHelpView(km.FullHelp())
	if content == "" {
		return ""
	}
	return Styles.Box.Render(content)
}
