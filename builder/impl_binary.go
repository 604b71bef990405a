// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// impl_binary.go - implementation of Binary(from, to) constructor.
//
// Contract:
//   - to-from ≥ 1; range inside N.
//   - Heap layout: vertex from+i (i ≥ 1) goes below from+(i-1)/2, emitted in
//     increasing i. Depth is ⌊log2(to-from)⌋.
//
// Complexity: O(to-from).

package builder

const (
	methodBinary   = "Binary"
	minBinaryNodes = 1
)

// Binary returns a Constructor that arranges [from, to) as a complete binary
// tree rooted at from.
func Binary(from, to int) Constructor {
	return func(s *Shape, _ builderConfig) error {
		if err := s.checkRange(methodBinary, from, to, minBinaryNodes); err != nil {
			return err
		}
		for i := 1; i < to-from; i++ {
			if err := s.addEdge(methodBinary, from+i, from+(i-1)/2); err != nil {
				return err
			}
		}

		return nil
	}
}
