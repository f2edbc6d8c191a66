package tabgroup

import (
	"testing"

	"tabgroup/internal/element"
)

func TestAdvance_FromNoneLandsOnFirst(t *testing.T) {
	for n := 1; n <= 10; n++ {
		if got := Advance(None, Forward, n); got != 0 {
			t.Errorf("Advance(None, forward, %d) = %d, want 0", n, got)
		}
		if got := Advance(None, Backward, n); got != 0 {
			t.Errorf("Advance(None, backward, %d) = %d, want 0", n, got)
		}
	}
}

func TestAdvance_Wraps(t *testing.T) {
	for n := 1; n <= 10; n++ {
		if got := Advance(Position(n-1), Forward, n); got != 0 {
			t.Errorf("forward wrap n=%d: got %d, want 0", n, got)
		}
		if got := Advance(0, Backward, n); got != Position(n-1) {
			t.Errorf("backward wrap n=%d: got %d, want %d", n, got, n-1)
		}
	}
}

func TestAdvance_Steps(t *testing.T) {
	tests := []struct {
		name    string
		current Position
		dir     Direction
		n       int
		want    Position
	}{
		{"forward middle", 1, Forward, 4, 2},
		{"backward middle", 2, Backward, 4, 1},
		{"single member forward", 0, Forward, 1, 0},
		{"single member backward", 0, Backward, 1, 0},
		{"no move keeps position", 2, NoMove, 4, 2},
		{"empty group", None, Forward, 0, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Advance(tt.current, tt.dir, tt.n); got != tt.want {
				t.Errorf("Advance(%d, %v, %d) = %d, want %d", tt.current, tt.dir, tt.n, got, tt.want)
			}
		})
	}
}

func TestAdvance_StaysInBounds(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for p := None; int(p) < n; p++ {
			for _, dir := range []Direction{Forward, Backward} {
				if got := Advance(p, dir, n); !got.In(n) {
					t.Errorf("Advance(%d, %v, %d) = %d, out of bounds", p, dir, n, got)
				}
			}
		}
	}
}

func TestSyncFromExternalFocus(t *testing.T) {
	a, b, outsider := element.NewNode("a"), element.NewNode("b"), element.NewNode("c")
	group := []*element.Node{a, b}

	tests := []struct {
		name    string
		group   []*element.Node
		focused *element.Node
		want    Position
	}{
		{"first", group, a, 0},
		{"second", group, b, 1},
		{"outsider", group, outsider, None},
		{"empty group", nil, a, None},
	}
	for _, tt := range tests {
		if got := SyncFromExternalFocus(tt.group, tt.focused); got != tt.want {
			t.Errorf("%s: SyncFromExternalFocus() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDirection_String(t *testing.T) {
	for dir, want := range map[Direction]string{Forward: "forward", Backward: "backward", NoMove: "none"} {
		if got := dir.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(dir), got, want)
		}
	}
}
