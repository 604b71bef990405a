// SPDX-License-Identifier: MIT
// Package: linkcut/monoid
//
// types.go - operator contracts and numeric constraints.

package monoid

// Operator combines vertex values of type V into path aggregates of type Q.
//
// Implementations must be associative with Identity() as a two-sided
// neutral element. OpLeft and OpRight exist so that an aggregate can absorb a
// single vertex without first lifting it; they must agree with Op over Lift.
type Operator[V, Q any] interface {
	// Identity returns the aggregate of the empty path.
	Identity() Q

	// Lift returns the aggregate of a one-vertex path.
	Lift(v V) Q

	// OpLeft appends vertex v to the right end of partial.
	OpLeft(partial Q, v V) Q

	// OpRight prepends vertex v to the left end of partial.
	OpRight(v V, partial Q) Q

	// Op concatenates two path aggregates, a first.
	Op(a, b Q) Q
}

// Reverser is implemented by non-commutative operators. Reverse returns the
// aggregate of the same path read in the opposite direction.
type Reverser[Q any] interface {
	Reverse(q Q) Q
}

// Integer is the set of Go integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Number is any integer or floating-point kind.
type Number interface {
	Integer | Float
}

// IsCommutative reports whether the forest may skip orientation handling for
// op, i.e. op does not implement Reverser.
func IsCommutative[V, Q any](op Operator[V, Q]) bool {
	_, ok := op.(Reverser[Q])

	return !ok
}
