// SPDX-License-Identifier: MIT
// Package: linkcut/builder
//
// impl_caterpillar.go - implementation of Caterpillar(from, spine, legs).
//
// Contract:
//   - spine ≥ 1 (else ErrTooFewVertices); legs ≥ 0.
//   - Uses spine·(1+legs) vertices starting at from (else
//     ErrRangeOutOfBounds).
//   - Spine vertices are from..from+spine-1, chained as a path rooted at from.
//     The legs of spine vertex k follow, in order, after the spine:
//     from+spine+k·legs .. from+spine+(k+1)·legs-1.
//
// Complexity: O(spine·(1+legs)).

package builder

import "fmt"

const (
	methodCaterpillar = "Caterpillar"
	minSpine          = 1
)

// Caterpillar returns a Constructor that builds a spine path with legs
// pendant leaves on every spine vertex.
func Caterpillar(from, spine, legs int) Constructor {
	return func(s *Shape, _ builderConfig) error {
		if spine < minSpine {
			return fmt.Errorf("%s: spine=%d < min=%d: %w", methodCaterpillar, spine, minSpine, ErrTooFewVertices)
		}
		if legs < 0 {
			return fmt.Errorf("%s: legs=%d < 0: %w", methodCaterpillar, legs, ErrTooFewVertices)
		}
		to := from + spine*(1+legs)
		if err := s.checkRange(methodCaterpillar, from, to, minSpine); err != nil {
			return err
		}

		for k := 1; k < spine; k++ {
			if err := s.addEdge(methodCaterpillar, from+k, from+k-1); err != nil {
				return err
			}
		}
		leaf := from + spine
		for k := 0; k < spine; k++ {
			for j := 0; j < legs; j++ {
				if err := s.addEdge(methodCaterpillar, leaf, from+k); err != nil {
					return err
				}
				leaf++
			}
		}

		return nil
	}
}
