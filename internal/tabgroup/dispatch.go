package tabgroup

import (
	"github.com/charmbracelet/bubbles/key"

	"tabgroup/internal/element"
)

// KeyMap holds the bindings the dispatcher recognizes.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	ArrowNext key.Binding
	ArrowPrev key.Binding
}

// DefaultKeyMap returns Tab/shift+Tab and the arrow bindings, all enabled.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		ArrowNext: key.NewBinding(
			key.WithKeys("right", "down"),
			key.WithHelp("→/↓", "next field"),
		),
		ArrowPrev: key.NewBinding(
			key.WithKeys("left", "up"),
			key.WithHelp("←/↑", "previous field"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.ArrowNext, k.ArrowPrev}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.ArrowNext, k.ArrowPrev}}
}

// Dispatcher turns key events into navigation directions. It holds no
// group state.
type Dispatcher struct {
	keys KeyMap
}

// NewDispatcher builds a dispatcher for opts. Arrow bindings are disabled
// unless opts.UseArrows; shift+Tab is disabled by opts.DisableShiftTab.
func NewDispatcher(opts Options) Dispatcher {
	keys := DefaultKeyMap()
	keys.ArrowNext.SetEnabled(opts.UseArrows)
	keys.ArrowPrev.SetEnabled(opts.UseArrows)
	keys.Prev.SetEnabled(!opts.DisableShiftTab)
	return Dispatcher{keys: keys}
}

// KeyMap returns the dispatcher's bindings, with disabled ones marked.
func (d Dispatcher) KeyMap() KeyMap {
	return d.keys
}

// keyName adapts a plain key identifier to fmt.Stringer for key.Matches.
type keyName string

func (k keyName) String() string { return string(k) }

// Interpret maps a key event to a direction. shiftHeld is the held-key
// state tracked by the caller; it counts the same as the event's own
// modifier. A result other than NoMove means the caller takes over focus
// movement and must prevent the event's default handling.
func (d Dispatcher) Interpret(ev *element.Event, shiftHeld bool) Direction {
	if ev == nil || ev.Type != element.KeyDown {
		return NoMove
	}

	if ev.Key == element.KeyTab {
		if ev.Shift || shiftHeld {
			if key.Matches(keyName("shift+tab"), d.keys.Prev) {
				return Backward
			}
			return NoMove
		}
		if key.Matches(keyName("tab"), d.keys.Next) {
			return Forward
		}
		return NoMove
	}

	// Arrows ignore modifiers.
	switch {
	case key.Matches(keyName(ev.Key), d.keys.ArrowPrev):
		return Backward
	case key.Matches(keyName(ev.Key), d.keys.ArrowNext):
		return Forward
	}
	return NoMove
}
