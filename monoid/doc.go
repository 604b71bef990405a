// Package monoid defines the path operators consumed by the link-cut tree in
// package lctree, together with a small set of ready-made operators.
//
// What:
//
//   - Operator[V, Q]: an associative combination with a two-sided identity,
//     split into OpLeft (partial·vertex), OpRight (vertex·partial) and
//     Op (partial·partial) so that left-to-right path order is preserved.
//   - Reverser[Q]: optional hook for non-commutative operators. A forest
//     calls Reverse whenever a path segment changes orientation (evert).
//     Operators without it are treated as commutative.
//
// Stock operators:
//
//   - Sum, Min, Max, Xor, Count           commutative
//   - Affine                              composition of x ↦ a·x+b (non-commutative)
//   - Sequence                            ordered list of path values (non-commutative)
//   - Func, ReversibleFunc                adapters over plain functions
//
// Laws every operator must satisfy:
//
//	Op(Op(a, b), c) == Op(a, Op(b, c))
//	Op(Identity(), a) == a == Op(a, Identity())
//	OpLeft(a, v) == Op(a, Lift(v)),  OpRight(v, a) == Op(Lift(v), a)
//
// and for a Reverser additionally:
//
//	Reverse(Reverse(a)) == a
//	Reverse(Op(a, b))   == Op(Reverse(b), Reverse(a))
//
// Complexity: every stock operator is O(1) per call except Sequence, which
// copies its slices and is meant for tests and diagnostics.
package monoid
