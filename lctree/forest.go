// SPDX-License-Identifier: MIT
// Package: linkcut/lctree
//
// forest.go - public forest operations.
//
// Policy:
//   - Structural rejections (cycle on Link, non-edge on Cut) are reported as
//     false before any change to the represented forest.
//   - Queries between disconnected vertices report ok == false.
//   - Operations taking two vertices may re-root internally; pass an explicit
//     root to LCA/Parent, or call Evert, when the rooting matters.

package lctree

// Evert makes x the root of its represented tree.
// Complexity: amortized O(log n).
func (f *Forest[V, Q]) Evert(x int) {
	f.evert(x)
}

// Link attaches the tree of u below v by adding the edge {u, v}; u becomes a
// child of v and the root of u's tree becomes u.
//
// Link returns false, leaving the forest unchanged, if u == v or u and v
// are already in the same tree.
// Complexity: amortized O(log n).
func (f *Forest[V, Q]) Link(u, v int) bool {
	if u == v {
		return false
	}
	f.evert(u)
	if f.findRoot(v) == u {
		return false
	}
	// u is the splay root of its whole tree; hang it from v by path-parent.
	f.nodes[u].parent = v

	return true
}

// Cut removes the edge {u, v}. With v as root, v is u's parent.
//
// Cut returns false, leaving the forest unchanged, if {u, v} is not an edge.
// Complexity: amortized O(log n).
func (f *Forest[V, Q]) Cut(u, v int) bool {
	if u == v {
		return false
	}
	f.evert(v)
	f.access(u)
	// v is the represented root, so it is leftmost; it is adjacent to u iff
	// it is u's left child with nothing to its right.
	if f.nodes[u].left != v || f.nodes[v].right != none {
		return false
	}
	f.nodes[u].left = none
	f.nodes[v].parent = none
	f.recompute(u)

	return true
}

// PathQuery folds the values on the path from u to v, in that order.
// ok is false when u and v are in different trees.
// Complexity: amortized O(log n) operator calls.
func (f *Forest[V, Q]) PathQuery(u, v int) (agg Q, ok bool) {
	f.evert(u)
	if f.findRoot(v) != u {
		return agg, false
	}
	f.access(v)

	return f.nodes[v].agg, true
}

// LCA returns the lowest common ancestor of u and v when the tree containing
// root is rooted at root. ok is false when u or v is not in root's tree.
// Complexity: amortized O(log n).
func (f *Forest[V, Q]) LCA(root, u, v int) (lca int, ok bool) {
	f.evert(root)
	if f.findRoot(u) != root || f.findRoot(v) != root {
		return none, false
	}
	f.access(u)

	return f.access(v), true
}

// Parent returns the parent of x when x's tree is rooted at root.
// ok is false when x == root or x is not in root's tree.
// Complexity: amortized O(log n).
func (f *Forest[V, Q]) Parent(root, x int) (parent int, ok bool) {
	if x == root {
		return none, false
	}
	f.evert(root)
	if f.findRoot(x) != root {
		return none, false
	}
	f.access(x)
	// The parent is the deepest vertex shallower than x: the rightmost node
	// of x's left subtree. x has been pushed by access.
	p := f.rightmost(f.nodes[x].left)
	f.splay(p)

	return p, true
}

// FindRoot returns the root of x's tree under its current rooting, which
// is the last vertex passed to Evert, or chosen internally by Link, Cut,
// PathQuery, LCA or Parent.
// Complexity: amortized O(log n).
func (f *Forest[V, Q]) FindRoot(x int) int {
	return f.findRoot(x)
}

// Connected reports whether u and v are in the same tree.
// Complexity: amortized O(log n).
func (f *Forest[V, Q]) Connected(u, v int) bool {
	if u == v {
		return true
	}

	return f.findRoot(u) == f.findRoot(v)
}

// Value returns the value stored at x. ok is false if x is out of range.
// Complexity: O(1).
func (f *Forest[V, Q]) Value(x int) (v V, ok bool) {
	if x < 0 || x >= len(f.nodes) {
		return v, false
	}

	return f.nodes[x].value, true
}

// SetValue replaces the value stored at x and updates every aggregate that
// covers it.
// Complexity: amortized O(log n).
func (f *Forest[V, Q]) SetValue(x int, v V) {
	f.access(x)
	f.nodes[x].value = v
	f.recompute(x)
}
