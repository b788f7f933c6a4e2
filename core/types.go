// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, node arena record, sentinel/typed errors, constants and NewGraph.
// Policy:
//   - Index 0 is a reserved sentinel; live nodes occupy indices 1..NodeCount().
//   - Adjacency is symmetric and weights are immutable once asserted.
//   - No internal locking: callers serialize access (see network.Network).

package core

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the reserved distance sentinel meaning "no known path".
// Distance sums saturate at it instead of overflowing.
const Unreachable int64 = math.MaxInt64

// MaxWeight bounds |weight| for a stored edge. A shortest path of up to
// 2^20 edges cannot sum to Unreachable.
const MaxWeight int64 = Unreachable >> 20

// NoIndex is the reserved arena slot. IndexOf never returns it for a known id.
const NoIndex = 0

// Sentinel errors for core graph operations.
var (
	// ErrConflict indicates that an edge already exists between the same pair
	// with a different weight. Use errors.As with *ConflictError for details.
	ErrConflict = errors.New("core: conflicting edge weight")

	// ErrWeightOutOfRange indicates a weight whose magnitude exceeds MaxWeight.
	ErrWeightOutOfRange = errors.New("core: weight out of range")
)

// ConflictError reports a rejected AddEdge: the pair (IDA, IDB) is already
// connected with Existing and the caller proposed Proposed.
type ConflictError struct {
	IDA      int64
	IDB      int64
	Existing int64
	Proposed int64
}

// Error implements error.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("core: conflicting weights between %d and %d: existing %d, proposed %d",
		e.IDA, e.IDB, e.Existing, e.Proposed)
}

// Is lets errors.Is(err, ErrConflict) match a *ConflictError.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// node is one arena record.
//
// adj maps neighbor index → weight for O(1) lookups; order keeps the same
// neighbor indices sorted ascending so that every traversal is deterministic.
type node struct {
	id    int64
	label string
	adj   map[int]int64
	order []int
}

// Graph is the index-addressed store of nodes, labels and symmetric weighted
// adjacency.
//
// nodes[0] is the unused sentinel slot. index maps external ids to arena
// slots. hooks run after every successful mutation.
type Graph struct {
	nodes []node
	index map[int64]int
	hooks []func()
}

// NewGraph creates an empty Graph with the sentinel slot reserved.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 1), // slot 0 reserved
		index: make(map[int64]int),
	}
}

// OnMutate registers fn to run after every successful AddEdge and after Clear.
// Hooks run synchronously in registration order. A nil fn is ignored.
func (g *Graph) OnMutate(fn func()) {
	if fn == nil {
		return
	}
	g.hooks = append(g.hooks, fn)
}

// notify runs every registered mutation hook.
func (g *Graph) notify() {
	for _, fn := range g.hooks {
		fn()
	}
}
