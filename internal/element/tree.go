package element

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Tree holds the mounted root and tracks which node has focus.
type Tree struct {
	root    *Node
	focused *Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Mount replaces the tree's root. The previous root and all of its
// descendants become detached and focus is cleared. Mount(nil) unmounts.
func (t *Tree) Mount(root *Node) {
	if t.root != nil {
		t.root.setTree(nil)
	}
	t.focused = nil
	t.root = root
	if root == nil {
		return
	}
	if root.parent != nil {
		root.parent.Remove(root)
	}
	root.setTree(t)
}

// Root returns the mounted root, or nil.
func (t *Tree) Root() *Node {
	return t.root
}

// Focused returns the node holding focus, or nil.
func (t *Tree) Focused() *Node {
	return t.focused
}

// FocusNode moves focus to n and dispatches FocusIn to it. Nodes that are
// not part of this tree are ignored.
func (t *Tree) FocusNode(n *Node) {
	if n == nil || n.tree != t || t.focused == n {
		return
	}
	t.focused = n
	n.Dispatch(&Event{Type: FocusIn, Target: n})
}

// HandleKey routes a key press to the focused node as a KeyDown followed by
// a KeyUp (terminals do not report key releases). A shifted key is also
// followed by a KeyUp of the shift key itself, so listeners tracking the
// held modifier see it released. When no listener prevents the default,
// Tab and shift+Tab move focus natively. It reports whether the key was
// consumed, either by a listener preventing the default or by native
// traversal; unconsumed keys belong to the focused widget.
func (t *Tree) HandleKey(msg tea.KeyMsg) bool {
	key, shift := TranslateKey(msg)
	target := t.focused

	prevented := false
	if target != nil {
		down := &Event{Type: KeyDown, Key: key, Shift: shift, Target: target}
		target.Dispatch(down)
		prevented = down.DefaultPrevented()
		t.release(target, key, shift)
	}
	if prevented {
		return true
	}
	if key == KeyTab {
		t.traverse(!shift)
		return true
	}
	return false
}

// release dispatches the KeyUp events for a press. Listeners may have moved
// focus; the releases go to the node that saw the press while it is still
// mounted, and to the focused node otherwise.
func (t *Tree) release(target *Node, key string, shift bool) {
	if target.tree != t {
		target = t.focused
	}
	if target == nil {
		return
	}
	target.Dispatch(&Event{Type: KeyUp, Key: key, Shift: shift, Target: target})
	if shift && key != KeyShift {
		target.Dispatch(&Event{Type: KeyUp, Key: KeyShift, Target: target})
	}
}

// TranslateKey converts a bubbletea key into a key identifier and the shift
// modifier state.
func TranslateKey(msg tea.KeyMsg) (key string, shift bool) {
	switch msg.Type {
	case tea.KeyTab:
		return KeyTab, false
	case tea.KeyShiftTab:
		return KeyTab, true
	case tea.KeyLeft:
		return KeyArrowLeft, false
	case tea.KeyRight:
		return KeyArrowRight, false
	case tea.KeyUp:
		return KeyArrowUp, false
	case tea.KeyDown:
		return KeyArrowDown, false
	case tea.KeyShiftLeft:
		return KeyArrowLeft, true
	case tea.KeyShiftRight:
		return KeyArrowRight, true
	case tea.KeyShiftUp:
		return KeyArrowUp, true
	case tea.KeyShiftDown:
		return KeyArrowDown, true
	}
	return msg.String(), false
}

// NativeOrder returns the nodes native traversal visits, in document order:
// focusable nodes whose tabindex, if set, is not negative.
func (t *Tree) NativeOrder() []*Node {
	if t.root == nil {
		return nil
	}
	var out []*Node
	t.root.Walk(func(n *Node) bool {
		if n.Focusable && !negativeTabIndex(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (t *Tree) traverse(forward bool) {
	order := t.NativeOrder()
	if len(order) == 0 {
		return
	}
	idx := -1
	for i, n := range order {
		if n == t.focused {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && forward:
		next = 0
	case idx < 0:
		next = len(order) - 1
	case forward:
		next = (idx + 1) % len(order)
	default:
		next = (idx - 1 + len(order)) % len(order)
	}
	t.FocusNode(order[next])
}

// forget clears focus when the focused node is n or one of its descendants.
func (t *Tree) forget(n *Node) {
	for cur := t.focused; cur != nil; cur = cur.parent {
		if cur == n {
			t.focused = nil
			return
		}
	}
}

func negativeTabIndex(n *Node) bool {
	raw, ok := n.Attr("tabindex")
	if !ok {
		return false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	return err == nil && v < 0
}
