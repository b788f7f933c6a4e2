// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_cycle.go - Cycle(n): simple cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges (i, i+1) for i = 0..n-2, then the closing edge (n-1, 0).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that emits the ring 0-1-...-(n-1)-0.
func Cycle(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := emit(sink, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
