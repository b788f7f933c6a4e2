// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(sink, opts, cons...). Resolves cfg once, runs cons in order.
//   - Factories are implemented in impl_*.go, one topology per file.
//   - Determinism: same options, seed and constructor order ⇒ identical edge stream.
//   - Constructors never panic at runtime; they return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// Sink receives generated edges. core.Graph, network.Network and the CLI's
// line writer implement it.
type Sink interface {
	AddEdge(idA, idB, weight int64) error
}

// Constructor emits one topology into sink using the resolved builderConfig.
// Constructors validate parameters before emitting anything.
type Constructor func(sink Sink, cfg builderConfig) error

// Build resolves opts and applies every constructor to sink in order.
// The first failure is wrapped as "Build: %w" and returned; edges already
// emitted stay in the sink.
//
// Complexity: O(len(opts)) + Σ cost of constructors.
func Build(sink Sink, opts []Option, cons ...Constructor) error {
	if sink == nil {
		return fmt.Errorf("Build: nil sink: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(sink, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// BuildGraph is Build into a fresh core.Graph.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Build(g, opts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// emit writes one edge with a weight drawn from cfg, wrapping sink errors
// with the method tag.
func emit(sink Sink, cfg builderConfig, method string, i, j int) error {
	a, b := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if err := sink.AddEdge(a, b, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", method, a, b, w, err)
	}

	return nil
}
