package tabgroup

import tea "github.com/charmbracelet/bubbletea"

// Scheduler runs work on a later turn of the host event loop.
type Scheduler interface {
	Defer(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

// Defer implements Scheduler.
func (f SchedulerFunc) Defer(fn func()) { f(fn) }

// TurnMsg carries deferred work back into a bubbletea program. The host
// calls Run from its Update.
type TurnMsg struct {
	work []func()
}

// Run executes the deferred work in order.
func (m TurnMsg) Run() {
	for _, fn := range m.work {
		fn()
	}
}

// Len returns the number of deferred functions carried by the message.
func (m TurnMsg) Len() int {
	return len(m.work)
}

// Queue is a Scheduler for bubbletea programs. Deferred work collects until
// the host asks for Cmd, which hands it back as a TurnMsg on a later turn.
type Queue struct {
	pending []func()
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Defer implements Scheduler.
func (q *Queue) Defer(fn func()) {
	q.pending = append(q.pending, fn)
}

// Pending returns the number of functions waiting for the next turn.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Cmd drains the queue into a command producing a TurnMsg. Returns nil when
// nothing is pending.
func (q *Queue) Cmd() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	work := q.pending
	q.pending = nil
	return func() tea.Msg {
		return TurnMsg{work: work}
	}
}
