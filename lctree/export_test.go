package lctree

import (
	"fmt"
)

// CheckInvariants walks every splay tree of f and verifies child/parent
// back-links, acyclicity and that each stored aggregate equals the fold of
// its subtree once pending reversals are resolved. eq compares aggregates.
func CheckInvariants[V, Q any](f *Forest[V, Q], eq func(a, b Q) bool) error {
	a := f.nodes
	seen := make([]bool, len(a))
	for x := range a {
		if !a.isSplayRoot(x) {
			continue
		}
		if _, err := f.checkSubtree(x, false, seen, eq); err != nil {
			return err
		}
	}
	for x, ok := range seen {
		if !ok {
			return fmt.Errorf("node %d unreachable from any splay root", x)
		}
	}

	return nil
}

// checkSubtree returns the effective aggregate of x when flip pending
// reversals from ancestors apply on top of the stored state.
func (f *Forest[V, Q]) checkSubtree(x int, flip bool, seen []bool, eq func(a, b Q) bool) (Q, error) {
	var zero Q
	if seen[x] {
		return zero, fmt.Errorf("node %d visited twice", x)
	}
	seen[x] = true

	n := f.nodes[x]
	l, r, agg := n.left, n.right, n.agg
	for _, c := range []int{l, r} {
		if c != none && f.nodes[c].parent != x {
			return zero, fmt.Errorf("child %d of %d points to parent %d", c, x, f.nodes[c].parent)
		}
	}
	if flip {
		l, r = r, l
		if f.rev != nil {
			agg = f.rev.Reverse(agg)
		}
	}
	childFlip := flip != n.rev

	want := f.op.Lift(n.value)
	if l != none {
		la, err := f.checkSubtree(l, childFlip, seen, eq)
		if err != nil {
			return zero, err
		}
		want = f.op.Op(la, want)
	}
	if r != none {
		ra, err := f.checkSubtree(r, childFlip, seen, eq)
		if err != nil {
			return zero, err
		}
		want = f.op.Op(want, ra)
	}
	if !eq(agg, want) {
		return zero, fmt.Errorf("node %d aggregate %v, want %v", x, agg, want)
	}

	return agg, nil
}

// SplayRootOf returns the root of x's splay tree without restructuring.
func SplayRootOf[V, Q any](f *Forest[V, Q], x int) int {
	for !f.nodes.isSplayRoot(x) {
		x = f.nodes[x].parent
	}

	return x
}

// Splay exposes the splay step for white-box tests.
func Splay[V, Q any](f *Forest[V, Q], x int) (pathParent, oldRoot int) {
	return f.splay(x)
}

// Access exposes access for white-box tests.
func Access[V, Q any](f *Forest[V, Q], x int) int {
	return f.access(x)
}

// None is the absent-link marker.
const None = none
