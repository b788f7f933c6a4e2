// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// weight_fn.go - edge weight generators. All generators return non-negative
// int64 weights; constructors panic on invalid parameters.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the constant weight used when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight. rng may be nil for deterministic generators.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [lo, hi] inclusive. Without an RNG it
// returns lo. Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}
		if hi-lo == math.MaxInt64 {
			return rng.Int63()
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}
