// Package ui hosts focus groups in a Bubble Tea program.
//
// The AppModel mounts one configured form at a time into an element tree
// and hands its root to a tabgroup.Controller. Key presses flow through:
//
//   - KeyHandler: app bindings (ctrl+n, ctrl+r, ctrl+x, f1, ctrl+c)
//   - element.Tree.HandleKey: group listeners, then native Tab traversal
//   - FormView: the focused text input
//
// Mouse clicks focus the field under the pointer, which the controller
// picks up as external focus.
package ui
