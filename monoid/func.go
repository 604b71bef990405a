// SPDX-License-Identifier: MIT
// Package: linkcut/monoid
//
// func.go - adapters turning plain functions into operators.

package monoid

// Func builds an Operator from an identity, a lift function and a combine
// function. OpLeft and OpRight are derived through Lift. Use it for
// commutative operators; wrap it in ReversibleFunc otherwise.
type Func[V, Q any] struct {
	Ident   Q
	LiftFn  func(v V) Q
	Combine func(a, b Q) Q
}

// NewFunc returns a Func operator. It panics if lift or combine is nil.
func NewFunc[V, Q any](identity Q, lift func(V) Q, combine func(a, b Q) Q) Func[V, Q] {
	if lift == nil || combine == nil {
		panic("monoid: NewFunc with nil function")
	}

	return Func[V, Q]{Ident: identity, LiftFn: lift, Combine: combine}
}

func (f Func[V, Q]) Identity() Q              { return f.Ident }
func (f Func[V, Q]) Lift(v V) Q               { return f.LiftFn(v) }
func (f Func[V, Q]) OpLeft(partial Q, v V) Q  { return f.Combine(partial, f.LiftFn(v)) }
func (f Func[V, Q]) OpRight(v V, partial Q) Q { return f.Combine(f.LiftFn(v), partial) }
func (f Func[V, Q]) Op(a, b Q) Q              { return f.Combine(a, b) }

// ReversibleFunc is a Func that also reverses aggregates, which marks it as
// non-commutative for the forest.
type ReversibleFunc[V, Q any] struct {
	Func[V, Q]
	ReverseFn func(q Q) Q
}

// NewReversibleFunc returns a ReversibleFunc. It panics if any function is nil.
func NewReversibleFunc[V, Q any](identity Q, lift func(V) Q, combine func(a, b Q) Q, reverse func(Q) Q) ReversibleFunc[V, Q] {
	if reverse == nil {
		panic("monoid: NewReversibleFunc with nil reverse")
	}

	return ReversibleFunc[V, Q]{Func: NewFunc(identity, lift, combine), ReverseFn: reverse}
}

func (f ReversibleFunc[V, Q]) Reverse(q Q) Q { return f.ReverseFn(q) }
