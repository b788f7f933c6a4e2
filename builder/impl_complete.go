// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_complete.go - Complete(n): K_n.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); K_1 has no edge to carry its node.
//   • Unordered pairs (i, j), i < j, in lexicographic order.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that emits every pair among n vertices.
func Complete(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := emit(sink, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
