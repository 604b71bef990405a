// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// impl_star.go - implementation of Star(center, from, to) constructor.
//
// Contract:
//   - [from, to) must hold at least one vertex besides center
//     (else ErrTooFewVertices); center and the range must fit in N
//     (else ErrRangeOutOfBounds).
//   - center may lie inside or outside [from, to); it is skipped as a leaf.
//   - Emits leaf → center in increasing leaf order.
//
// Complexity: O(to-from) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar    = "Star"
	minStarLeaves = 1
)

// Star returns a Constructor that hangs every vertex of [from, to) below
// center.
func Star(center, from, to int) Constructor {
	return func(s *Shape, _ builderConfig) error {
		leaves := to - from
		if center >= from && center < to {
			leaves--
		}
		if leaves < minStarLeaves {
			return fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, leaves, minStarLeaves, ErrTooFewVertices)
		}
		if err := s.checkRange(methodStar, from, to, 0); err != nil {
			return err
		}
		if center < 0 || center >= s.N {
			return fmt.Errorf("%s: center=%d outside [0,%d): %w", methodStar, center, s.N, ErrRangeOutOfBounds)
		}

		for leaf := from; leaf < to; leaf++ {
			if leaf == center {
				continue
			}
			if err := s.addEdge(methodStar, leaf, center); err != nil {
				return err
			}
		}

		return nil
	}
}
