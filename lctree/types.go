// SPDX-License-Identifier: MIT
// Package: linkcut/lctree
//
// types.go - the Forest type and its constructors.

package lctree

import (
	"iter"

	"github.com/katalvlaran/linkcut/monoid"
)

// Forest is a link-cut tree over vertices 0..Len()-1 carrying values of type
// V and path aggregates of type Q.
//
// The zero value is not usable; build one with New or Collect.
type Forest[V, Q any] struct {
	op  monoid.Operator[V, Q]
	rev monoid.Reverser[Q] // nil for commutative operators

	nodes arena[V, Q]

	// chain is scratch space for splay's top-down push; reused across calls.
	chain []int
}

// New builds a forest of len(values) singleton trees. Vertex i carries
// values[i]. The slice is copied.
//
// New panics if op is nil.
// Complexity: O(n) time and memory.
func New[V, Q any](op monoid.Operator[V, Q], values []V) *Forest[V, Q] {
	if op == nil {
		panic("lctree: New with nil operator")
	}
	f := &Forest[V, Q]{
		op:    op,
		nodes: newArena(op, values),
	}
	if r, ok := op.(monoid.Reverser[Q]); ok {
		f.rev = r
	}

	return f
}

// Collect builds a forest from the values yielded by seq; the i-th yielded
// value becomes vertex i.
//
// Collect panics if op is nil.
// Complexity: O(n).
func Collect[V, Q any](op monoid.Operator[V, Q], seq iter.Seq[V]) *Forest[V, Q] {
	var values []V
	for v := range seq {
		values = append(values, v)
	}

	return New(op, values)
}

// Len returns the number of vertices.
func (f *Forest[V, Q]) Len() int {
	return len(f.nodes)
}

// Operator returns the operator the forest aggregates with.
func (f *Forest[V, Q]) Operator() monoid.Operator[V, Q] {
	return f.op
}
