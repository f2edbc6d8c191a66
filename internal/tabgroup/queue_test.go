package tabgroup

import (
	"slices"
	"testing"
)

func TestQueue_CmdDrainsPending(t *testing.T) {
	q := NewQueue()
	if q.Cmd() != nil {
		t.Error("empty queue returned a command")
	}

	var order []int
	q.Defer(func() { order = append(order, 1) })
	q.Defer(func() { order = append(order, 2) })
	if q.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", q.Pending())
	}

	cmd := q.Cmd()
	if cmd == nil {
		t.Fatal("queue with pending work returned no command")
	}
	if q.Pending() != 0 {
		t.Errorf("pending after Cmd = %d, want 0", q.Pending())
	}
	if len(order) != 0 {
		t.Errorf("work ran before the message was handled: %v", order)
	}

	msg, ok := cmd().(TurnMsg)
	if !ok {
		t.Fatalf("command produced %T, want TurnMsg", cmd())
	}
	if msg.Len() != 2 {
		t.Errorf("turn carries %d funcs, want 2", msg.Len())
	}
	msg.Run()
	if !slices.Equal(order, []int{1, 2}) {
		t.Errorf("run order = %v, want [1 2]", order)
	}
}

func TestSchedulerFunc(t *testing.T) {
	var deferred []func()
	s := SchedulerFunc(func(fn func()) { deferred = append(deferred, fn) })

	ran := false
	s.Defer(func() { ran = true })
	if len(deferred) != 1 {
		t.Fatalf("deferred = %d funcs, want 1", len(deferred))
	}
	if ran {
		t.Error("deferred func ran immediately")
	}
	deferred[0]()
	if !ran {
		t.Error("deferred func did not run")
	}
}
