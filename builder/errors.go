// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w:
//     fmt.Errorf("%s: size=%d < min=%d: %w", methodPath, size, min, ErrTooFewVertices)
//   - Constructors never panic; panics are confined to option constructors.
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrRangeOutOfBounds, then ErrInvalidProbability,
//   then ErrNeedRandSource, and ErrConstructFailed last.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, range length, spine)
// is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrRangeOutOfBounds indicates a vertex range or vertex index that does not
// fit inside the Shape being built.
var ErrRangeOutOfBounds = errors.New("builder: vertex range out of bounds")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; set WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not produce a
// forest: a nil constructor, or an edge that would close a cycle because
// two constructors overlapped.
var ErrConstructFailed = errors.New("builder: construction failed")
