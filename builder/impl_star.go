// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_star.go - Star(n): hub index 0 with n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Spokes (0, i) for i = 1..n-1, in that order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that emits a star centred on index 0.
func Star(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := emit(sink, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
