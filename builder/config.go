// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng     = nil            (pure/deterministic unless seeded)
//   - valueFn = DefaultValueFn (every vertex carries DefaultVertexValue)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Vertex value generator, called once per vertex in index order.
	valueFn ValueFn
}

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: DefaultValueFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
