// Package dijkstra implements a memoizing shortest-path engine over core.Graph
// that records every equal-cost predecessor of each node.
//
// Overview:
//
//   - Calculate(source) computes distances and ordered parent sets for every
//     node reachable from source and caches them.
//   - Distance(source, target) reuses the cache when it is valid for source,
//     and reconstructs one canonical path by following each node's first
//     recorded parent.
//   - AllPaths(source, target, limit) walks every recorded parent and returns
//     all tied shortest paths.
//
// Cache state machine:
//
//	StateUninitialized ──Calculate/Distance(S)──▶ StateValid(S)
//	StateValid(S)      ──AddEdge/Clear on graph──▶ StateUninitialized
//	StateValid(S)      ──Distance(S, ·)──────────▶ StateValid(S)   (no work)
//	StateValid(S)      ──Distance(T, ·), T≠S─────▶ StateValid(T)
//
// New registers Engine.Invalidate on the graph, so the engine never serves a
// result computed before the latest successful mutation.
//
// Tie handling:
//
// A relaxation that improves a distance replaces the node's parents with the
// relaxing node. A relaxation that matches the distance appends the relaxing
// node if it is not already recorded. Because neighbors are relaxed in
// ascending index order and the frontier minimum is the earliest one in
// frontier order, parents[v][0] is reproducible.
//
// Performance and complexity:
//
//   - Time:  O(V² + E). The frontier is a plain slice scanned per step, which
//     keeps tie resolution exact and is adequate for teaching-sized graphs.
//   - Space: O(V + E) for per-index state; allocations are reused across runs.
//
// Distances use core.Unreachable as "no path". Sums saturate instead of
// overflowing.
//
// Observers:
//
//	eng.Distance(1, 9, dijkstra.WithObserver(dijkstra.ObserverFunc(
//	    func(index int, dist int64, final bool) { ... })))
//
// The observer sees each step synchronously; it exists for progress display
// and step-by-step walkthroughs and cannot influence the computation.
//
// Thread safety:
//
//   - Engine has no internal locking and must be confined to one goroutine
//     or guarded externally, as network.Network does.
package dijkstra
