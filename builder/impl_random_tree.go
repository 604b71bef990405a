// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// impl_random_tree.go - RandomTree(from, to) and RandomForest(from, to, p).
//
// Canonical model: random recursive tree. Vertex from+i (i ≥ 1) picks its
// parent uniformly among from..from+i-1. Expected depth is O(log n), which
// keeps link-cut workloads away from the degenerate path case.
//
// Contract:
//   - to-from ≥ 1; range inside N.
//   - RandomForest: 0 ≤ p ≤ 1 (else ErrInvalidProbability); each edge is
//     kept with probability p, so the expected number of trees is
//     1 + (1-p)(to-from-1).
//   - cfg.rng must be set (else ErrNeedRandSource), except RandomForest with
//     p == 0, which emits nothing.
//
// Determinism: parents are drawn in increasing i; RandomForest draws the
// keep trial before the parent for every i.

package builder

import "fmt"

const (
	methodRandomTree   = "RandomTree"
	methodRandomForest = "RandomForest"
	minRandomNodes     = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomTree returns a Constructor that samples a random recursive tree over
// [from, to) rooted at from.
func RandomTree(from, to int) Constructor {
	return func(s *Shape, cfg builderConfig) error {
		if err := s.checkRange(methodRandomTree, from, to, minRandomNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTree, ErrNeedRandSource)
		}
		for i := 1; i < to-from; i++ {
			if err := s.addEdge(methodRandomTree, from+i, from+cfg.rng.Intn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomForest returns a Constructor that samples a random recursive tree
// over [from, to) and keeps each of its edges with probability p.
func RandomForest(from, to int, p float64) Constructor {
	return func(s *Shape, cfg builderConfig) error {
		if err := s.checkRange(methodRandomForest, from, to, minRandomNodes); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomForest, p, probMin, probMax, ErrInvalidProbability)
		}
		if p == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomForest, ErrNeedRandSource)
		}
		for i := 1; i < to-from; i++ {
			keep := cfg.rng.Float64() < p
			parent := from + cfg.rng.Intn(i)
			if !keep {
				continue
			}
			if err := s.addEdge(methodRandomForest, from+i, parent); err != nil {
				return err
			}
		}

		return nil
	}
}
