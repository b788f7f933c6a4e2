// File: engine.go
// Role: Memoized single-source shortest paths with tie tracking.
//
// Complexity:
//
//   - Calculate: Time O(V² + E), Space O(V + E).
//     The frontier is scanned linearly on every step; ties are resolved by
//     frontier order, then by ascending neighbor index.
//   - Distance:  O(1) + O(path) when the cache is valid for the source,
//     otherwise Calculate first.
//
// Determinism:
//
//   - Neighbors are relaxed in ascending index order and the first strict
//     minimum of the frontier wins, so parents[v][0] is reproducible across
//     runs and Distance always reconstructs the same canonical path.

package dijkstra

import (
	"slices"

	"github.com/katalvlaran/pathlab/core"
)

// Engine runs shortest-path computations over one core.Graph and memoizes
// the per-node state of the most recent source.
//
// An Engine is not safe for concurrent use; see network.Network.
type Engine struct {
	g    *core.Graph
	opts Options

	state  CacheState
	source int // valid only when state == StateValid

	dist       []int64 // by arena index
	visited    []bool
	parents    [][]int // ordered, duplicate-free
	frontier   []int
	inFrontier []bool
}

// New creates an Engine bound to g and registers its Invalidate as a
// mutation hook, so any successful AddEdge or Clear drops the cache.
//
// Panics with ErrNilGraph if g is nil.
func New(g *core.Graph, opts ...Option) *Engine {
	if g == nil {
		panic(ErrNilGraph.Error())
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Engine{g: g, opts: cfg}
	g.OnMutate(e.Invalidate)

	return e
}

// State reports the cache state and, when StateValid, the cached source index.
func (e *Engine) State() (CacheState, int) {
	if e.state != StateValid {
		return StateUninitialized, core.NoIndex
	}

	return StateValid, e.source
}

// Invalidate drops the memoized computation.
func (e *Engine) Invalidate() {
	e.state = StateUninitialized
	e.source = core.NoIndex
}

// Calculate computes distances and parent sets from sourceID to every node
// and caches them as valid for sourceID. It always recomputes.
//
// Errors:
//   - ErrEmptyGraph if the graph has no nodes.
//   - *UnknownNodeError (matches ErrUnknownNode) if sourceID is not registered.
//
// Observer calls, in order: (src, 0, false); one per seeded neighbor with the
// edge weight; one per visited node with its final distance; one per strict
// improvement with the new distance; and a closing (src, 0, true).
func (e *Engine) Calculate(sourceID int64, opts ...Option) error {
	if e.g.NodeCount() == 0 {
		return ErrEmptyGraph
	}
	src, ok := e.g.IndexOf(sourceID)
	if !ok {
		return &UnknownNodeError{ID: sourceID}
	}
	e.run(src, e.callOptions(opts).Observer)

	return nil
}

// Distance returns the shortest distance and canonical path from sourceID to
// targetID, recomputing only when the cache is not valid for sourceID.
//
// Resolution order:
//  1. Unknown source or target → NodeNotFound.
//  2. sourceID == targetID     → FoundTrivial, distance 0, path [source].
//     The cache is left untouched and the observer receives (src, 0, true).
//  3. Recompute if needed, then walk first parents back from the target:
//     an empty parent set → Unreachable; more steps than nodes → InternalError.
//
// Edge weights are bounded by core.MaxWeight, so a real path sum reaches
// core.Unreachable only past 2^20 maximal edges; beyond that it saturates and
// the target reads as Unreachable.
func (e *Engine) Distance(sourceID, targetID int64, opts ...Option) Result {
	miss := Result{Code: NodeNotFound, Distance: core.Unreachable}
	src, okS := e.g.IndexOf(sourceID)
	if !okS {
		return miss
	}
	dst, okD := e.g.IndexOf(targetID)
	if !okD {
		return miss
	}

	cfg := e.callOptions(opts)
	if src == dst {
		cfg.Observer.Visit(src, 0, true)
		return Result{Code: FoundTrivial, Distance: 0, Path: []int64{sourceID}}
	}

	recomputed := e.ensure(src, cfg.Observer)

	limit := e.g.NodeCount()
	walk := make([]int, 0, 8)
	cur := dst
	for cur != src && len(walk) < limit {
		walk = append(walk, cur)
		if len(e.parents[cur]) == 0 {
			return Result{Code: Unreachable, Distance: core.Unreachable, Recomputed: recomputed}
		}
		cur = e.parents[cur][0]
	}
	if cur != src {
		return Result{Code: InternalError, Distance: core.Unreachable, Recomputed: recomputed}
	}
	walk = append(walk, src)

	path := make([]int64, len(walk))
	for i, idx := range walk {
		path[len(walk)-1-i], _ = e.g.IDOf(idx)
	}

	return Result{Code: Found, Distance: e.dist[dst], Path: path, Recomputed: recomputed}
}

// AllPaths enumerates every shortest path from sourceID to targetID by
// following all recorded parents, depth-first in recorded order. The first
// path equals the one Distance returns. limit <= 0 means no limit.
//
// The ResultCode follows Distance's resolution rules.
func (e *Engine) AllPaths(sourceID, targetID int64, limit int, opts ...Option) ([][]int64, ResultCode) {
	src, okS := e.g.IndexOf(sourceID)
	dst, okD := e.g.IndexOf(targetID)
	if !okS || !okD {
		return nil, NodeNotFound
	}
	if src == dst {
		return [][]int64{{sourceID}}, FoundTrivial
	}
	e.ensure(src, e.callOptions(opts).Observer)
	if len(e.parents[dst]) == 0 {
		return nil, Unreachable
	}

	var (
		out   [][]int64
		stack = []int{dst}
		depth = e.g.NodeCount()
	)
	var expand func(cur int) bool
	expand = func(cur int) bool {
		if cur == src {
			p := make([]int64, len(stack))
			for i, idx := range stack {
				p[len(stack)-1-i], _ = e.g.IDOf(idx)
			}
			out = append(out, p)
			return limit <= 0 || len(out) < limit
		}
		if len(stack) > depth {
			return true // parent chains are acyclic; unreachable in practice
		}
		for _, p := range e.parents[cur] {
			stack = append(stack, p)
			more := expand(p)
			stack = stack[:len(stack)-1]
			if !more {
				return false
			}
		}

		return true
	}
	expand(dst)
	if len(out) == 0 {
		return nil, InternalError
	}

	return out, Found
}

// Parents returns the recorded parent identifiers of id, in recording order,
// from the current cache. Returns nil if the cache is not valid or id is
// unknown. It never recomputes.
func (e *Engine) Parents(id int64) []int64 {
	idx, ok := e.g.IndexOf(id)
	if !ok || e.state != StateValid || idx >= len(e.parents) {
		return nil
	}
	out := make([]int64, 0, len(e.parents[idx]))
	for _, p := range e.parents[idx] {
		pid, _ := e.g.IDOf(p)
		out = append(out, pid)
	}

	return out
}

// DistanceTo returns the cached distance of id from the cached source.
// ok is false if the cache is not valid or id is unknown. It never recomputes.
func (e *Engine) DistanceTo(id int64) (int64, bool) {
	idx, ok := e.g.IndexOf(id)
	if !ok || e.state != StateValid || idx >= len(e.dist) {
		return core.Unreachable, false
	}

	return e.dist[idx], true
}

// callOptions layers per-call options over the engine defaults.
func (e *Engine) callOptions(opts []Option) Options {
	cfg := e.opts
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ensure recomputes from src unless the cache already holds it.
func (e *Engine) ensure(src int, obs Observer) bool {
	if e.state == StateValid && e.source == src {
		return false
	}
	e.run(src, obs)

	return true
}

// run is the computation proper. src must be a valid index.
func (e *Engine) run(src int, obs Observer) {
	e.reset()

	e.dist[src] = 0
	e.visited[src] = true
	obs.Visit(src, 0, false)

	// Seed from direct neighbors. A self-loop on src is skipped.
	e.g.EachNeighbor(src, func(nb int, w int64) bool {
		if nb == src {
			return true
		}
		e.dist[nb] = w
		e.parents[nb] = append(e.parents[nb][:0], src)
		e.push(nb)
		obs.Visit(nb, w, false)

		return true
	})

	for len(e.frontier) > 0 {
		pos := 0
		for i := 1; i < len(e.frontier); i++ {
			if e.dist[e.frontier[i]] < e.dist[e.frontier[pos]] {
				pos = i
			}
		}
		cur := e.frontier[pos]
		e.frontier = slices.Delete(e.frontier, pos, pos+1)
		e.inFrontier[cur] = false

		e.visited[cur] = true
		base := e.dist[cur]
		obs.Visit(cur, base, false)

		e.g.EachNeighbor(cur, func(nb int, w int64) bool {
			if e.visited[nb] {
				return true
			}
			cand := addSat(base, w)
			switch {
			case cand < e.dist[nb]:
				e.dist[nb] = cand
				e.parents[nb] = append(e.parents[nb][:0], cur)
				e.push(nb)
				obs.Visit(nb, cand, false)
			case cand == e.dist[nb] && cand != core.Unreachable:
				if !slices.Contains(e.parents[nb], cur) {
					e.parents[nb] = append(e.parents[nb], cur)
				}
			}

			return true
		})
	}

	e.state = StateValid
	e.source = src
	obs.Visit(src, 0, true)
}

// reset sizes the per-index arrays for the current graph and clears them,
// reusing previous allocations.
func (e *Engine) reset() {
	n := e.g.NodeCount() + 1 // slot 0 stays unused
	if cap(e.dist) < n {
		e.dist = make([]int64, n)
		e.visited = make([]bool, n)
		e.inFrontier = make([]bool, n)
		grown := make([][]int, n)
		copy(grown, e.parents)
		e.parents = grown
	}
	e.dist = e.dist[:n]
	e.visited = e.visited[:n]
	e.inFrontier = e.inFrontier[:n]
	e.parents = e.parents[:n]
	for i := range n {
		e.dist[i] = core.Unreachable
		e.visited[i] = false
		e.inFrontier[i] = false
		e.parents[i] = e.parents[i][:0]
	}
	e.frontier = e.frontier[:0]
}

// push appends idx to the frontier unless already present.
func (e *Engine) push(idx int) {
	if e.inFrontier[idx] {
		return
	}
	e.inFrontier[idx] = true
	e.frontier = append(e.frontier, idx)
}

// addSat returns a+b clamped to (-Unreachable, Unreachable].
func addSat(a, b int64) int64 {
	switch {
	case b > 0 && a > core.Unreachable-b:
		return core.Unreachable
	case b < 0 && a < -core.Unreachable-b:
		return -core.Unreachable + 1
	default:
		return a + b
	}
}
