// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_path.go - Path(n): simple path P_n.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges (i, i+1) for i = 0..n-2, in that order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that emits the path 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := emit(sink, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
