package tabgroup

import "tabgroup/internal/element"

// Position is an index into a group. None means no member is active.
type Position int

// None is the null position.
const None Position = -1

// Valid reports whether p refers to a member (it may still be out of range
// for a particular group).
func (p Position) Valid() bool {
	return p >= 0
}

// In reports whether p is a valid index for a group of length n.
func (p Position) In(n int) bool {
	return p >= 0 && int(p) < n
}

// Direction is the outcome of interpreting a key.
type Direction int

const (
	NoMove Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Advance returns the position after moving one step in dir within a group
// of n members. From None both directions land on 0, so the first key press
// enters the group at its first member. Moving past either end wraps.
// Callers never advance in an empty group; None is returned if they do.
func Advance(current Position, dir Direction, n int) Position {
	if n <= 0 {
		return None
	}
	if !current.Valid() {
		return 0
	}
	next := current
	switch dir {
	case Forward:
		next++
	case Backward:
		next--
	default:
		return current
	}
	if int(next) >= n {
		next = 0
	}
	if next < 0 {
		next = Position(n - 1)
	}
	return next
}

// SyncFromExternalFocus returns the position of node in group, or None if
// it is not a member.
func SyncFromExternalFocus(group []*element.Node, node *element.Node) Position {
	for i, n := range group {
		if n == node {
			return Position(i)
		}
	}
	return None
}
