// SPDX-License-Identifier: MIT
// Package: linkcut/monoid
//
// affine.go - composition of affine maps along a path.
//
// Contract:
//   - Vertex value Linear{A, B} is the map x ↦ A·x + B.
//   - The aggregate of path v1..vk (in path order) applies v1 first:
//     Fwd = vk ∘ … ∘ v1. Bwd holds the composition for the reversed path,
//     so Reverse is a swap.
//   - With Mod > 0 every coefficient is reduced into [0, Mod).
//     With Mod == 0 arithmetic wraps in int64.

package monoid

// Linear is the affine map x ↦ A·x + B.
type Linear struct {
	A, B int64
}

// Eval applies l to x without modular reduction.
func (l Linear) Eval(x int64) int64 {
	return l.A*x + l.B
}

// AffinePath is the aggregate of Affine: the composed map in both directions.
type AffinePath struct {
	Fwd, Bwd Linear
}

// Affine composes affine maps in path order. It is non-commutative.
type Affine struct {
	Mod int64
}

// NewAffine returns an Affine operator reducing modulo mod (0 disables
// reduction). It panics on a negative modulus.
func NewAffine(mod int64) Affine {
	if mod < 0 {
		panic("monoid: NewAffine(mod<0)")
	}

	return Affine{Mod: mod}
}

var identityLinear = Linear{A: 1, B: 0}

func (a Affine) Identity() AffinePath {
	return AffinePath{Fwd: identityLinear, Bwd: identityLinear}
}

func (a Affine) Lift(v Linear) AffinePath {
	v = a.norm(v)

	return AffinePath{Fwd: v, Bwd: v}
}

func (a Affine) OpLeft(partial AffinePath, v Linear) AffinePath {
	return a.Op(partial, a.Lift(v))
}

func (a Affine) OpRight(v Linear, partial AffinePath) AffinePath {
	return a.Op(a.Lift(v), partial)
}

// Op returns the aggregate of path p followed by path q.
func (a Affine) Op(p, q AffinePath) AffinePath {
	return AffinePath{
		Fwd: a.then(p.Fwd, q.Fwd),
		Bwd: a.then(q.Bwd, p.Bwd),
	}
}

func (Affine) Reverse(p AffinePath) AffinePath {
	return AffinePath{Fwd: p.Bwd, Bwd: p.Fwd}
}

// Apply evaluates the forward composition of p at x.
func (a Affine) Apply(p AffinePath, x int64) int64 {
	return a.reduce(p.Fwd.A*a.reduce(x) + p.Fwd.B)
}

// then returns g ∘ f: f is applied first.
func (a Affine) then(f, g Linear) Linear {
	return Linear{
		A: a.reduce(g.A * f.A),
		B: a.reduce(g.A*f.B + g.B),
	}
}

func (a Affine) norm(l Linear) Linear {
	return Linear{A: a.reduce(l.A), B: a.reduce(l.B)}
}

func (a Affine) reduce(x int64) int64 {
	if a.Mod == 0 {
		return x
	}
	x %= a.Mod
	if x < 0 {
		x += a.Mod
	}

	return x
}
