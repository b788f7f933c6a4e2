// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// options.go - functional options. Invalid arguments panic at option
// construction time, before any edge is emitted.

package builder

import "math/rand"

// Option mutates builderConfig before constructors run.
type Option func(*builderConfig)

// WithIDScheme maps vertex indices to identifiers. fn must be injective over
// the indices a constructor uses. Panics on nil.
func WithIDScheme(fn func(int) int64) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithOffset shifts the default scheme: index i → base+i.
func WithOffset(base int64) Option {
	return WithIDScheme(func(i int) int64 { return base + int64(i) })
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi int64) Option {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
