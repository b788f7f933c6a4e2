// Package core provides the index-addressed graph store used by every other
// pathlab package: nodes, display labels and a symmetric weighted adjacency.
//
// Model:
//
//   - Nodes live in a contiguous arena addressed by dense integer index.
//     Index 0 (NoIndex) is a reserved sentinel; live indices are 1..NodeCount().
//   - External identifiers are arbitrary int64 values. IndexOf / IDOf translate
//     between the two spaces in O(1); the mapping is a bijection.
//   - Nodes are created lazily by AddEdge, in first-reference order, and are
//     never removed individually. Clear resets the whole store.
//   - Every node carries a label which defaults to the decimal identifier.
//
// Edges:
//
//	AddEdge(a, b, w)      // both directions or neither
//	AddEdge(a, b, w)      // again: no-op success
//	AddEdge(a, b, w2)     // w2 != w → *ConflictError, w is kept
//	AddEdge(a, a, 0)      // self-loop, stored once
//
// Weights are signed int64 values within [-MaxWeight, MaxWeight], far below
// Unreachable (math.MaxInt64), which is reserved for "no known path".
//
// Determinism:
//
//   - IDs() is in index order.
//   - EachNeighbor iterates in ascending index order.
//     Shortest-path tie breaking in package dijkstra depends on this.
//
// Mutation hooks:
//
//	g.OnMutate(engine.Invalidate)
//
// Hooks run synchronously after each successful AddEdge (including a
// same-weight re-assertion) and after Clear. Label changes do not run hooks.
//
// Concurrency:
//
// Graph has no internal locking. Callers serialize access; network.Network
// does so with a single mutex.
package core
