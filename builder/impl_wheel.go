// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} plus a hub.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices), so the rim is a valid cycle.
//   • Rim is Cycle(n-1) over indices 0..n-2; the hub is index n-1.
//   • Spokes (n-1, i) follow the rim, in increasing i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that emits a wheel with hub index n-1.
func Wheel(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(sink, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := emit(sink, cfg, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
