// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// options.go - functional options for Build.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Seeding is explicit, via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes Build by mutating the builderConfig before any
// vertex or edge is generated.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors and value
// generators. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the vertex value generator. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}
