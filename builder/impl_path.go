// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// impl_path.go - implementation of Path(from, to) constructor.
//
// Contract:
//   - to-from ≥ 2 (else ErrTooFewVertices); 0 ≤ from, to ≤ N (else
//     ErrRangeOutOfBounds).
//   - Emits i → i-1 for i = from+1..to-1 in increasing order, so the path is
//     rooted at from.
//
// Complexity: O(to-from) time, O(1) extra space.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that chains the vertices of [from, to).
func Path(from, to int) Constructor {
	return func(s *Shape, _ builderConfig) error {
		if err := s.checkRange(methodPath, from, to, minPathNodes); err != nil {
			return err
		}
		for i := from + 1; i < to; i++ {
			if err := s.addEdge(methodPath, i, i-1); err != nil {
				return err
			}
		}

		return nil
	}
}
