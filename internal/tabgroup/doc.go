// Package tabgroup implements a focus-order controller: a group of elements
// under a root, each marked with a positive "tabindex", visited in numeric
// order by Tab and shift+Tab (and optionally the arrow keys) with wraparound.
//
// The pieces, leaves first:
//
//   - Scan finds qualifying descendants and sorts them numerically.
//   - Advance and SyncFromExternalFocus are the pure position transitions.
//   - Dispatcher maps key events to a Direction using bubbles/key bindings.
//   - listenerSet subscribes every member to key and focus events and
//     rebuilds those subscriptions whenever the group or the active
//     position changes.
//   - Controller owns the group and the active position and is the only
//     thing a host talks to.
//
// A host hands the controller its root through the Ref callback:
//
//	queue := tabgroup.NewQueue()
//	ctrl, err := tabgroup.New(tabgroup.Options{AutoFocus: true, Scheduler: queue})
//	ctrl.Ref()(root)
//	// in Update: return m, queue.Cmd(); on TurnMsg: msg.Run()
//
// Auto-focus is deferred to a later turn and bound to the generation it was
// scheduled in; replacing the root or rescanning makes it a no-op.
package tabgroup
