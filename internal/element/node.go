package element

// Attr is a name/value attribute pair used when constructing nodes.
type Attr struct {
	Name  string
	Value string
}

type listenerEntry struct {
	id ListenerID
	fn Listener
}

// Node is an element in a Tree. Nodes carry string attributes, an ordered
// list of children, and per-event-type listeners.
type Node struct {
	Tag string
	// Focusable marks nodes the tree's native tab traversal visits
	// (text inputs, buttons). Unrelated to the tabindex attribute.
	Focusable bool

	attrs     map[string]string
	children  []*Node
	parent    *Node
	tree      *Tree
	listeners map[EventType][]listenerEntry
	nextID    ListenerID
}

// NewNode creates a detached node with the given attributes.
func NewNode(tag string, attrs ...Attr) *Node {
	n := &Node{
		Tag:       tag,
		attrs:     make(map[string]string, len(attrs)),
		listeners: make(map[EventType][]listenerEntry),
	}
	for _, a := range attrs {
		n.attrs[a.Name] = a.Value
	}
	return n
}

// Attr returns the raw value of an attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute to a raw string value.
func (n *Node) SetAttr(name, value string) {
	n.attrs[name] = value
}

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Append adds children at the end. A child that already has a parent is
// moved.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
		c.setTree(n.tree)
	}
	return n
}

// Remove detaches child from n. Returns false if child is not a child of n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c != child {
			continue
		}
		n.children = append(n.children[:i], n.children[i+1:]...)
		child.parent = nil
		if t := child.tree; t != nil {
			t.forget(child)
		}
		child.setTree(nil)
		return true
	}
	return false
}

// Walk calls fn for every descendant of n in document order (n excluded).
// Returning false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	for _, c := range n.children {
		if fn(c) {
			c.Walk(fn)
		}
	}
}

// Attached reports whether the node is part of a mounted tree.
func (n *Node) Attached() bool {
	return n.tree != nil
}

// Focused reports whether the node currently holds focus in its tree.
func (n *Node) Focused() bool {
	return n.tree != nil && n.tree.focused == n
}

// Focus asks the tree to move focus to n. Focusing a detached node does
// nothing. A FocusIn event fires only when focus actually moves.
func (n *Node) Focus() {
	if n.tree == nil {
		return
	}
	n.tree.FocusNode(n)
}

// Blur drops focus if n holds it. No event fires; focusing n again
// dispatches FocusIn as usual.
func (n *Node) Blur() {
	if n.Focused() {
		n.tree.focused = nil
	}
}

// AddListener subscribes fn to events of type t.
func (n *Node) AddListener(t EventType, fn Listener) ListenerID {
	n.nextID++
	id := n.nextID
	n.listeners[t] = append(n.listeners[t], listenerEntry{id: id, fn: fn})
	return id
}

// RemoveListener unsubscribes a listener. Returns false if id is unknown.
func (n *Node) RemoveListener(t EventType, id ListenerID) bool {
	entries := n.listeners[t]
	for i, e := range entries {
		if e.id == id {
			n.listeners[t] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners for t, or for all types
// when t is negative.
func (n *Node) ListenerCount(t EventType) int {
	if t >= 0 {
		return len(n.listeners[t])
	}
	total := 0
	for _, entries := range n.listeners {
		total += len(entries)
	}
	return total
}

// Dispatch delivers ev to the node's listeners for ev.Type in subscription
// order. A listener removed while the event is in flight is skipped.
func (n *Node) Dispatch(ev *Event) {
	if ev.Target == nil {
		ev.Target = n
	}
	snapshot := make([]listenerEntry, len(n.listeners[ev.Type]))
	copy(snapshot, n.listeners[ev.Type])
	for _, e := range snapshot {
		if !n.hasListener(ev.Type, e.id) {
			continue
		}
		e.fn(ev)
	}
}

func (n *Node) hasListener(t EventType, id ListenerID) bool {
	for _, e := range n.listeners[t] {
		if e.id == id {
			return true
		}
	}
	return false
}

func (n *Node) setTree(t *Tree) {
	n.tree = t
	for _, c := range n.children {
		c.setTree(t)
	}
}
