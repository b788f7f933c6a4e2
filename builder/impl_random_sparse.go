// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like sampling.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   • Trials over unordered pairs (i, j), i < j, in lexicographic order.
//   • Nodes are registered through edges only: a vertex with no sampled edge
//     does not appear in the sink.
//
// Determinism: fixed trial order ⇒ identical output for a fixed seed.
// Complexity: O(n²) trials, O(1) extra space.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case cfg.rng == nil:
					keep = p == probMax
				default:
					keep = cfg.rng.Float64() < p || p == probMax
				}
				if !keep {
					continue
				}
				if err := emit(sink, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
