// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// api.go - public entry point and the Shape produced by constructors.
//
// Design contract:
//   - One orchestrator: Build(n, opts, cons...). Allocates the Shape, resolves
//     cfg, draws vertex values, then runs cons in order.
//   - Constructors only add edges over [from, to) vertex ranges of the shared
//     Shape; several constructors may populate disjoint ranges of one forest.
//   - Every edge goes through Shape.addEdge, which rejects a cycle with
//     ErrConstructFailed, so a returned Shape is always a forest.
//   - Determinism: same n, options, seed and constructor order produce an
//     identical Shape.

package builder

import (
	"fmt"
)

// Edge asks for Child to be linked below Parent.
type Edge struct {
	Child  int
	Parent int
}

// Shape is a generated forest: N vertices carrying Values, connected by
// Edges in emission order. Replaying Edges as links in order never closes a
// cycle.
type Shape struct {
	N      int
	Values []int64
	Edges  []Edge

	sets disjointSet
}

// Constructor adds edges to s using the resolved configuration. It must
// validate its parameters before touching s and return sentinel errors
// wrapped with %w.
type Constructor func(s *Shape, cfg builderConfig) error

// Build allocates n vertices, fills their values with the configured ValueFn
// and applies every constructor in order. Constructor errors are wrapped as
// "Build: %w" and returned immediately.
//
// Complexity: O(n + Σ constructor cost), near-linear in the edge count.
func Build(n int, opts []BuilderOption, cons ...Constructor) (*Shape, error) {
	if n < minShapeVertices {
		return nil, fmt.Errorf("Build: n=%d < min=%d: %w", n, minShapeVertices, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	s := &Shape{
		N:      n,
		Values: make([]int64, n),
		sets:   newDisjointSet(n),
	}
	for i := range s.Values {
		s.Values[i] = cfg.valueFn(i, cfg.rng)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s, nil
}

// Components returns the number of trees in s.
func (s *Shape) Components() int {
	return s.N - len(s.Edges)
}

const minShapeVertices = 1

// addEdge records child below parent unless that would join two vertices
// already in the same tree.
func (s *Shape) addEdge(method string, child, parent int) error {
	if !s.sets.union(child, parent) {
		return fmt.Errorf("%s: edge %d→%d closes a cycle: %w", method, child, parent, ErrConstructFailed)
	}
	s.Edges = append(s.Edges, Edge{Child: child, Parent: parent})

	return nil
}

// checkRange validates the half-open range [from, to) against s and a
// minimum size. Size is checked first.
func (s *Shape) checkRange(method string, from, to, minSize int) error {
	if to-from < minSize {
		return fmt.Errorf("%s: size=%d < min=%d: %w", method, to-from, minSize, ErrTooFewVertices)
	}
	if from < 0 || to > s.N {
		return fmt.Errorf("%s: range [%d,%d) outside [0,%d): %w", method, from, to, s.N, ErrRangeOutOfBounds)
	}

	return nil
}

// =============================================================================
// Shape factories - implemented in impl_*.go
// =============================================================================
//
// Path(from, to)                 chain from → from+1 → ... → to-1.
// Star(center, from, to)         every vertex of [from, to) except center
//                                below center.
// Binary(from, to)               heap-ordered complete binary tree.
// Caterpillar(from, spine, legs) a path of spine vertices, each with legs
//                                pendant leaves.
// RandomTree(from, to)           random recursive tree; needs an RNG.
// RandomForest(from, to, p)      random recursive tree keeping each edge
//                                with probability p.
