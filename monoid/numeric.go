// SPDX-License-Identifier: MIT
// Package: linkcut/monoid
//
// numeric.go - commutative operators over numbers.

package monoid

// Sum adds vertex values along a path. The zero value is ready to use.
type Sum[T Number] struct{}

func (Sum[T]) Identity() T {
	var zero T

	return zero
}

func (Sum[T]) Lift(v T) T             { return v }
func (Sum[T]) OpLeft(partial, v T) T  { return partial + v }
func (Sum[T]) OpRight(v, partial T) T { return v + partial }
func (Sum[T]) Op(a, b T) T            { return a + b }

// Xor folds vertex values with bitwise exclusive or.
type Xor[T Integer] struct{}

func (Xor[T]) Identity() T {
	var zero T

	return zero
}

func (Xor[T]) Lift(v T) T             { return v }
func (Xor[T]) OpLeft(partial, v T) T  { return partial ^ v }
func (Xor[T]) OpRight(v, partial T) T { return v ^ partial }
func (Xor[T]) Op(a, b T) T            { return a ^ b }

// Min keeps the smallest vertex value on a path. Top is the identity and
// must compare greater than or equal to every value that can occur.
type Min[T Number] struct {
	Top T
}

// NewMin returns a Min operator whose identity is top.
func NewMin[T Number](top T) Min[T] {
	return Min[T]{Top: top}
}

func (m Min[T]) Identity() T            { return m.Top }
func (Min[T]) Lift(v T) T               { return v }
func (m Min[T]) OpLeft(partial, v T) T  { return m.Op(partial, v) }
func (m Min[T]) OpRight(v, partial T) T { return m.Op(v, partial) }

func (Min[T]) Op(a, b T) T {
	if b < a {
		return b
	}

	return a
}

// Max keeps the largest vertex value on a path. Bottom is the identity and
// must compare less than or equal to every value that can occur.
type Max[T Number] struct {
	Bottom T
}

// NewMax returns a Max operator whose identity is bottom.
func NewMax[T Number](bottom T) Max[T] {
	return Max[T]{Bottom: bottom}
}

func (m Max[T]) Identity() T            { return m.Bottom }
func (Max[T]) Lift(v T) T               { return v }
func (m Max[T]) OpLeft(partial, v T) T  { return m.Op(partial, v) }
func (m Max[T]) OpRight(v, partial T) T { return m.Op(v, partial) }

func (Max[T]) Op(a, b T) T {
	if b > a {
		return b
	}

	return a
}

// Count ignores vertex payloads and counts the vertices on a path.
type Count[V any] struct{}

func (Count[V]) Identity() int                { return 0 }
func (Count[V]) Lift(V) int                   { return 1 }
func (Count[V]) OpLeft(partial int, _ V) int  { return partial + 1 }
func (Count[V]) OpRight(_ V, partial int) int { return partial + 1 }
func (Count[V]) Op(a, b int) int              { return a + b }
