// Package element is a small retained element tree for terminal UIs.
//
// Nodes carry string attributes (the focus controller reads "tabindex"),
// children, and listeners for key-down, key-up and focus events. A Tree
// mounts one root, tracks the focused node, and turns bubbletea key
// messages into per-node events:
//
//	tree := element.NewTree()
//	tree.Mount(root)
//	consumed := tree.HandleKey(msg) // KeyDown + KeyUp on the focused node
//
// When no listener prevents the default, Tab and shift+Tab move focus
// through Focusable nodes in document order, the way a browser would
// without any custom ordering.
package element
