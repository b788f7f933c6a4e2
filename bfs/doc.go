// Package bfs provides breadth-first traversal over a core.Graph.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start id and
//     returns the visit Order, per-node Depth and the BFS-tree Parent.
//   - Reachable is the visit order alone.
//   - Components partitions the whole graph into connected components.
//
// Weights are ignored; use package dijkstra for weighted distances.
//
// Hooks and options
//
//   - WithContext:        cancellation, checked once per dequeued node.
//   - WithOnVisit:        called per visited node; a non-nil error aborts.
//   - WithMaxDepth:       hop limit (0 means none, negative is rejected).
//   - WithFilterNeighbor: drop individual edges by endpoint ids and weight.
//
// Determinism
//
// Neighbors are expanded in ascending arena index order (core.Graph keeps
// them sorted), so visit order depends only on insertion history.
//
// Complexity
//
//   - Time:  O(V + E)
//   - Space: O(V)
package bfs
