package tabgroup

import (
	"slices"
	"testing"

	"tabgroup/internal/element"
)

// unmarked passed as tabindex leaves the attribute off entirely.
const unmarked = "\x00"

func node(name, tabindex string) *element.Node {
	n := element.NewNode("input", element.Attr{Name: "name", Value: name})
	n.Focusable = true
	if tabindex != unmarked {
		n.SetAttr(OrderAttr, tabindex)
	}
	return n
}

func names(group []*element.Node) []string {
	out := make([]string, len(group))
	for i, n := range group {
		out[i], _ = n.Attr("name")
	}
	return out
}

func assertNames(t *testing.T, group []*element.Node, want ...string) {
	t.Helper()
	if got := names(group); !slices.Equal(got, want) {
		t.Errorf("group = %v, want %v", got, want)
	}
}

func TestScan_SortsAscending(t *testing.T) {
	root := element.NewNode("form").Append(
		node("three", "3"),
		node("one", "1"),
		node("two", "2"),
	)
	assertNames(t, Scan(root), "one", "two", "three")
}

func TestScan_NumericNotLexicographic(t *testing.T) {
	root := element.NewNode("form").Append(
		node("ten", "10"),
		node("two", "2"),
		node("hundred", "100"),
		node("nine", "9"),
	)
	assertNames(t, Scan(root), "two", "nine", "ten", "hundred")
}

func TestScan_ExcludesNonPositive(t *testing.T) {
	root := element.NewNode("form").Append(
		node("zero", "0"),
		node("negative", "-3"),
		node("removed", "-1"),
		node("empty", ""),
		node("blank", "   "),
		node("text", "abc"),
		node("absent", unmarked),
		node("nan", "NaN"),
		node("inf", "Inf"),
		node("kept", "4"),
	)
	assertNames(t, Scan(root), "kept")
}

func TestScan_TiesKeepDocumentOrder(t *testing.T) {
	root := element.NewNode("form").Append(
		node("b1", "2"),
		node("a", "1"),
		node("b2", "2"),
		node("b3", "2"),
	)
	assertNames(t, Scan(root), "a", "b1", "b2", "b3")
}

func TestScan_DescendantsOnly(t *testing.T) {
	root := node("root", "1")
	inner := element.NewNode("section").Append(node("deep", "5"))
	root.Append(inner, node("shallow", "7"))

	assertNames(t, Scan(root), "deep", "shallow")
}

func TestScan_Idempotent(t *testing.T) {
	root := element.NewNode("form").Append(
		node("c", "30"),
		node("a", "1"),
		node("b", "4"),
	)
	first := Scan(root)
	second := Scan(root)
	if len(first) != 3 {
		t.Fatalf("group has %d members, want 3", len(first))
	}
	if !slices.Equal(first, second) {
		t.Errorf("second scan = %v, want %v", names(second), names(first))
	}
}

func TestScan_EmptyAndNil(t *testing.T) {
	if got := Scan(nil); len(got) != 0 {
		t.Errorf("Scan(nil) = %v, want empty", names(got))
	}
	if got := Scan(element.NewNode("form").Append(node("x", "0"))); len(got) != 0 {
		t.Errorf("Scan(zero only) = %v, want empty", names(got))
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1", 1, true},
		{" 12 ", 12, true},
		{"2.5", 2.5, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"x", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseOrder(tt.raw)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseOrder(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}
