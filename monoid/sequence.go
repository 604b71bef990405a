// SPDX-License-Identifier: MIT
// Package: linkcut/monoid
//
// sequence.go - the ordered list of values on a path.

package monoid

// Seq is the aggregate of Sequence. Fwd lists the path values in path order,
// Bwd in reverse. Aggregates are immutable once built; Op always copies.
type Seq[V any] struct {
	Fwd, Bwd []V
}

// Sequence lists the values along a path. Every combination copies, so it
// costs O(path length) per call; use it for tests and diagnostics.
type Sequence[V any] struct{}

func (Sequence[V]) Identity() Seq[V] { return Seq[V]{} }

func (Sequence[V]) Lift(v V) Seq[V] {
	return Seq[V]{Fwd: []V{v}, Bwd: []V{v}}
}

func (s Sequence[V]) OpLeft(partial Seq[V], v V) Seq[V] {
	return s.Op(partial, s.Lift(v))
}

func (s Sequence[V]) OpRight(v V, partial Seq[V]) Seq[V] {
	return s.Op(s.Lift(v), partial)
}

func (Sequence[V]) Op(a, b Seq[V]) Seq[V] {
	return Seq[V]{Fwd: concat(a.Fwd, b.Fwd), Bwd: concat(b.Bwd, a.Bwd)}
}

func (Sequence[V]) Reverse(q Seq[V]) Seq[V] {
	return Seq[V]{Fwd: q.Bwd, Bwd: q.Fwd}
}

func concat[V any](a, b []V) []V {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]V, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
