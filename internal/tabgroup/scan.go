package tabgroup

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"tabgroup/internal/element"
)

// OrderAttr is the attribute carrying a node's ordering value.
const OrderAttr = "tabindex"

// ParseOrder interprets a raw ordering attribute. It reports false for
// values that keep a node out of the group: empty, non-numeric, zero or
// negative.
func ParseOrder(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// Scan returns the descendants of root that carry a positive ordering
// value, sorted ascending by that value. Values compare as numbers, so 2
// sorts before 10; equal values keep document order.
func Scan(root *element.Node) []*element.Node {
	if root == nil {
		return nil
	}

	type member struct {
		node  *element.Node
		order float64
	}
	var found []member
	root.Walk(func(n *element.Node) bool {
		raw, ok := n.Attr(OrderAttr)
		if !ok {
			return true
		}
		if v, ok := ParseOrder(raw); ok {
			found = append(found, member{node: n, order: v})
		}
		return true
	})

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].order < found[j].order
	})

	group := make([]*element.Node, len(found))
	for i, m := range found {
		group[i] = m.node
	}
	return group
}
