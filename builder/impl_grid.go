// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood lattice.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   • Cell (r, c) has index r*cols + c (row-major).
//   • Per cell in row-major order: right edge first, then down edge.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that emits a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: %dx%d too small: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := emit(sink, cfg, methodGrid, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emit(sink, cfg, methodGrid, at, at+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
