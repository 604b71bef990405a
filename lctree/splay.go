// SPDX-License-Identifier: MIT
// Package: linkcut/lctree
//
// splay.go - splay engine: rotation, lazy reversal, aggregate upkeep.
//
// Contract:
//   - flip(x) applies a reversal to x immediately (children swapped, agg
//     reversed) and leaves the same work pending for x's children.
//   - push(x) must run before x's children are inspected or re-linked.
//   - recompute(x) requires push(x) to have run; children's aggregates are
//     always exact for their current orientation.
//   - rotate never crosses a path-parent boundary.

package lctree

// flip applies a pending reversal to x.
func (f *Forest[V, Q]) flip(x int) {
	n := &f.nodes[x]
	n.left, n.right = n.right, n.left
	n.rev = !n.rev
	if f.rev != nil {
		n.agg = f.rev.Reverse(n.agg)
	}
}

// push hands x's pending reversal to its children.
func (f *Forest[V, Q]) push(x int) {
	n := &f.nodes[x]
	if !n.rev {
		return
	}
	if n.left != none {
		f.flip(n.left)
	}
	if n.right != none {
		f.flip(n.right)
	}
	n.rev = false
}

// recompute rebuilds x's aggregate as left · value · right.
func (f *Forest[V, Q]) recompute(x int) {
	n := &f.nodes[x]
	switch {
	case n.left != none && n.right != none:
		n.agg = f.op.Op(f.op.OpLeft(f.nodes[n.left].agg, n.value), f.nodes[n.right].agg)
	case n.left != none:
		n.agg = f.op.OpLeft(f.nodes[n.left].agg, n.value)
	case n.right != none:
		n.agg = f.op.OpRight(n.value, f.nodes[n.right].agg)
	default:
		n.agg = f.op.Lift(n.value)
	}
}

// rotate lifts x over its splay parent p. The subtree between them moves to
// p, and x takes over p's link to the grandparent, whether that link is a
// real child link or a path-parent pointer. p's aggregate is recomputed; x's
// is left for the caller.
//
//	      p              x
//	     / \            / \
//	    x   c   ->     a   p
//	   / \                / \
//	  a   b              b   c
func (f *Forest[V, Q]) rotate(x int) {
	a := f.nodes
	p := a[x].parent
	g := a[p].parent

	if a[p].left == x {
		b := a[x].right
		a[p].left = b
		if b != none {
			a[b].parent = p
		}
		a[x].right = p
	} else {
		b := a[x].left
		a[p].right = b
		if b != none {
			a[b].parent = p
		}
		a[x].left = p
	}

	if g != none {
		switch p {
		case a[g].left:
			a[g].left = x
		case a[g].right:
			a[g].right = x
		}
	}
	a[p].parent = x
	a[x].parent = g

	f.recompute(p)
}

// splay makes x the root of its splay tree.
//
// It first pushes pending reversals top-down along x's real ancestors, then
// applies zig, zig-zig and zig-zag steps. It returns the path-parent that sat
// above the old splay root (none if the tree holds the represented root) and
// the old splay root itself.
func (f *Forest[V, Q]) splay(x int) (pathParent, oldRoot int) {
	a := f.nodes

	chain := append(f.chain[:0], x)
	for y := x; !a.isSplayRoot(y); {
		y = a[y].parent
		chain = append(chain, y)
	}
	oldRoot = chain[len(chain)-1]
	pathParent = a[oldRoot].parent
	for i := len(chain) - 1; i >= 0; i-- {
		f.push(chain[i])
	}
	f.chain = chain

	for !a.isSplayRoot(x) {
		p := a[x].parent
		if !a.isSplayRoot(p) {
			if a.isRightChild(x) == a.isRightChild(p) {
				f.rotate(p) // zig-zig
			} else {
				f.rotate(x) // zig-zag
			}
		}
		f.rotate(x)
	}
	f.recompute(x)

	return pathParent, oldRoot
}
