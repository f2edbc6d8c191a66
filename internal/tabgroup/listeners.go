package tabgroup

import "tabgroup/internal/element"

// handlers are the callbacks a listenerSet routes member events to.
type handlers struct {
	keyDown func(node *element.Node, ev *element.Event, shiftHeld bool)
	focus   func(node *element.Node)
}

type attachment struct {
	node    *element.Node
	keyDown element.ListenerID
	keyUp   element.ListenerID
	focus   element.ListenerID
}

// listenerSet owns the subscriptions on the current group's members and
// the held shift state that goes with them.
type listenerSet struct {
	h         handlers
	attached  []attachment
	shiftHeld bool
}

func newListenerSet(h handlers) *listenerSet {
	return &listenerSet{h: h}
}

// rebuild removes every subscription and subscribes each member of group
// again.
func (s *listenerSet) rebuild(group []*element.Node) {
	s.detach()
	for _, n := range group {
		s.attach(n)
	}
}

func (s *listenerSet) attach(n *element.Node) {
	a := attachment{node: n}
	a.keyDown = n.AddListener(element.KeyDown, func(ev *element.Event) {
		if ev.Shift || ev.Key == element.KeyShift {
			s.shiftHeld = true
		}
		s.h.keyDown(n, ev, s.shiftHeld)
	})
	a.keyUp = n.AddListener(element.KeyUp, func(ev *element.Event) {
		if ev.Key == element.KeyShift {
			s.shiftHeld = false
		}
	})
	a.focus = n.AddListener(element.FocusIn, func(*element.Event) {
		s.h.focus(n)
	})
	s.attached = append(s.attached, a)
}

// detach removes every subscription. The held shift state survives; it is
// cleared by reset when the group itself goes away.
func (s *listenerSet) detach() {
	for _, a := range s.attached {
		a.node.RemoveListener(element.KeyDown, a.keyDown)
		a.node.RemoveListener(element.KeyUp, a.keyUp)
		a.node.RemoveListener(element.FocusIn, a.focus)
	}
	s.attached = nil
}

// reset detaches everything and forgets the held shift state.
func (s *listenerSet) reset() {
	s.detach()
	s.shiftHeld = false
}

func (s *listenerSet) count() int {
	return len(s.attached)
}
