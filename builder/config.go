// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = OneBasedID     (0 → 1, 1 → 2, ...)
//   • rng      = nil            (pure unless seeded)
//   • weightFn = DefaultWeightFn (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     func(int) int64
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     OneBasedID,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// OneBasedID maps vertex index i to identifier i+1, so generated graphs
// never use 0 as an id.
func OneBasedID(i int) int64 {
	return int64(i) + 1
}
