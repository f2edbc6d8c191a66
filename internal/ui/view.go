package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a screen region with its own Init/Update/View. FormView is the
// only one today; the app model owns the element tree it renders.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
