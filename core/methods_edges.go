// File: methods_edges.go
// Role: Edge insertion and adjacency queries.
//
// Determinism:
//   - EachNeighbor yields neighbors in ascending index order.
//
// Policy:
//   - Edges are undirected: AddEdge writes both directions or neither.
//   - Re-asserting an edge with the same weight succeeds without change;
//     a different weight is a *ConflictError and the stored weight is kept.

package core

import (
	"fmt"
	"slices"
)

// AddEdge connects idA and idB with weight, registering either identifier on
// first reference (next sequential index, default label).
//
// Implementation:
//   - Stage 1: Reject weights whose magnitude reaches Unreachable.
//   - Stage 2: If both ids are known and already adjacent, compare weights:
//     equal ⇒ no-op success, different ⇒ *ConflictError (nothing changes).
//   - Stage 3: Register missing ids and write the symmetric entries.
//     A self-loop (idA == idB) is stored once in the node's own adjacency.
//   - Stage 4: Run mutation hooks.
//
// Errors:
//   - ErrWeightOutOfRange (wrapped with the offending pair).
//   - *ConflictError, matching ErrConflict via errors.Is.
//
// Complexity: O(deg) for the ordered neighbor insert, O(1) otherwise.
func (g *Graph) AddEdge(idA, idB, weight int64) error {
	if weight > MaxWeight || weight < -MaxWeight {
		return fmt.Errorf("%w: edge %d-%d weight=%d", ErrWeightOutOfRange, idA, idB, weight)
	}

	if ia, okA := g.index[idA]; okA {
		if ib, okB := g.index[idB]; okB {
			if existing, linked := g.nodes[ia].adj[ib]; linked {
				if existing != weight {
					return &ConflictError{IDA: idA, IDB: idB, Existing: existing, Proposed: weight}
				}
				g.notify()

				return nil
			}
		}
	}

	ia := g.ensureNode(idA)
	ib := g.ensureNode(idB)
	g.link(ia, ib, weight)
	if ia != ib {
		g.link(ib, ia, weight)
	}
	g.notify()

	return nil
}

// link records the one-directional entry from → to.
func (g *Graph) link(from, to int, weight int64) {
	n := &g.nodes[from]
	n.adj[to] = weight
	pos, found := slices.BinarySearch(n.order, to)
	if !found {
		n.order = slices.Insert(n.order, pos, to)
	}
}

// Weight returns the weight stored between two arena indices.
// Complexity: O(1).
func (g *Graph) Weight(indexA, indexB int) (int64, bool) {
	if indexA <= NoIndex || indexA >= len(g.nodes) {
		return 0, false
	}
	w, ok := g.nodes[indexA].adj[indexB]

	return w, ok
}

// Neighbors returns a fresh neighbor id → weight mapping for id.
// Unknown identifiers yield an empty, non-nil map.
// Complexity: O(deg).
func (g *Graph) Neighbors(id int64) map[int64]int64 {
	idx, ok := g.index[id]
	if !ok {
		return map[int64]int64{}
	}
	n := g.nodes[idx]
	out := make(map[int64]int64, len(n.order))
	for _, nb := range n.order {
		out[g.nodes[nb].id] = n.adj[nb]
	}

	return out
}

// EachNeighbor calls fn for every neighbor of index in ascending index order
// without allocating. Iteration stops early when fn returns false.
// fn must not mutate the graph.
func (g *Graph) EachNeighbor(index int, fn func(neighbor int, weight int64) bool) {
	if index <= NoIndex || index >= len(g.nodes) {
		return
	}
	n := &g.nodes[index]
	for _, nb := range n.order {
		if !fn(nb, n.adj[nb]) {
			return
		}
	}
}
