// SPDX-License-Identifier: MIT
// Package: linkcut/lctree
//
// arena.go - node records and the flat store that owns them.
//
// Contract:
//   - Exactly one node per vertex, allocated once, never freed or moved.
//   - Links are indices into the same slice; none marks an absent link.
//   - Only this package touches node fields; callers see vertex handles.

package lctree

import (
	"github.com/katalvlaran/linkcut/monoid"
)

// none marks an absent parent or child link.
const none = -1

// node is one vertex's splay-tree record.
//
// parent is either none (root of its splay tree and of the represented tree
// it decomposes), a real splay parent (whose left or right is this node), or
// a path-parent (whose children do not point back).
type node[V, Q any] struct {
	value V
	agg   Q

	// rev: the children of this node have not yet had their own orientation
	// flipped. The node's left/right and agg are already flipped.
	rev bool

	parent int
	left   int
	right  int
}

// arena owns all nodes of a forest.
type arena[V, Q any] []node[V, Q]

// newArena allocates one singleton splay tree per value.
// Complexity: O(len(values)).
func newArena[V, Q any](op monoid.Operator[V, Q], values []V) arena[V, Q] {
	a := make(arena[V, Q], len(values))
	for i, v := range values {
		a[i] = node[V, Q]{
			value:  v,
			agg:    op.Lift(v),
			parent: none,
			left:   none,
			right:  none,
		}
	}

	return a
}

// isSplayRoot reports whether x has no real splay parent, i.e. its parent is
// absent or is only a path-parent.
func (a arena[V, Q]) isSplayRoot(x int) bool {
	p := a[x].parent

	return p == none || (a[p].left != x && a[p].right != x)
}

// isRightChild reports whether x is the right child of its splay parent.
// Only meaningful when !isSplayRoot(x).
func (a arena[V, Q]) isRightChild(x int) bool {
	return a[a[x].parent].right == x
}
