package element

// EventType identifies the kind of event delivered to a node.
type EventType int

const (
	KeyDown EventType = iota
	KeyUp
	FocusIn
)

func (t EventType) String() string {
	switch t {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case FocusIn:
		return "focus"
	default:
		return "unknown"
	}
}

// Key identifiers carried by key events. Other keys use bubbletea's
// KeyMsg.String() form ("a", "enter", "ctrl+c").
const (
	KeyTab        = "tab"
	KeyArrowLeft  = "left"
	KeyArrowUp    = "up"
	KeyArrowRight = "right"
	KeyArrowDown  = "down"
	KeyShift      = "shift"
)

// Event is a key or focus notification for a single node.
type Event struct {
	Type   EventType
	Key    string // empty for focus events
	Shift  bool   // shift modifier state at the time of the event
	Target *Node

	defaultPrevented bool
}

// PreventDefault stops the tree from applying its native handling
// (tab traversal, cursor movement in text inputs) after dispatch.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// String returns the key in bubbletea notation, so events can be matched
// with bubbles/key bindings: "tab", "shift+tab", "left".
func (e *Event) String() string {
	if e.Shift && e.Key != "" && e.Key != KeyShift {
		return "shift+" + e.Key
	}
	return e.Key
}

// Listener handles an event delivered to a node.
type Listener func(*Event)

// ListenerID identifies a subscription so it can be removed later.
// Function values are not comparable, so subscriptions are tracked by ID.
type ListenerID uint64
