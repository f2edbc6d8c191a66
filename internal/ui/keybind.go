package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps app-level keys to commands.
// Keys use tea.KeyMsg.String() notation: "ctrl+c", "ctrl+n", "esc".
// Everything not bound here reaches the form.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	n := normalizeKey(k)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[normalizeKey(k)]
}

// Hints returns all bound keys with descriptions for display.
// Values are descriptions, or the key itself if none was set.
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil {
			continue
		}
		if d, ok := r.descriptions[k]; ok && d != "" {
			out[k] = d
		} else {
			out[k] = k
		}
	}
	return out
}

// Bindings returns key.Binding values in registration order, for help
// rendering. Keys bound to nil are skipped.
func (r *KeybindRegistry) Bindings() []key.Binding {
	hints := r.Hints()
	out := make([]key.Binding, 0, len(hints))
	for _, k := range r.order {
		desc, ok := hints[k]
		if !ok {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc)))
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// KeyHandler dispatches key presses to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was an app binding and must not reach the form.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap by combining the app bindings with the
// focus navigation bindings. Disabled navigation keys drop out of help.
type KeyMap struct {
	registry   *KeybindRegistry
	navigation help.KeyMap
}

// NewKeyMap creates a KeyMap for the given registry and navigation keys.
func NewKeyMap(registry *KeybindRegistry, navigation help.KeyMap) help.KeyMap {
	return &KeyMap{registry: registry, navigation: navigation}
}

// ShortHelp returns the navigation keys followed by the app keys.
func (km *KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	if km.navigation != nil {
		out = append(out, km.navigation.ShortHelp()...)
	}
	if km.registry != nil {
		out = append(out, km.registry.Bindings()...)
	}
	return out
}

// FullHelp returns navigation and app keys as separate columns.
func (km *KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	if km.navigation != nil {
		cols = append(cols, km.navigation.FullHelp()...)
	}
	if km.registry != nil {
		if b := km.registry.Bindings(); len(b) > 0 {
			cols = append(cols, b)
		}
	}
	return cols
}
