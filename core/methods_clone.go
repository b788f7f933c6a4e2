// File: methods_clone.go
// Role: Whole-graph maintenance: Clear and Clone.

package core

import (
	"maps"
	"slices"
)

// Clear drops all nodes, edges and labels and restarts index allocation at 1.
// Registered mutation hooks survive and are run once afterwards.
// Complexity: O(1) (old storage is released to the GC).
func (g *Graph) Clear() {
	g.nodes = make([]node, 1)
	g.index = make(map[int64]int)
	g.notify()
}

// Clone returns a deep copy of g with identical indices, labels and weights.
// Mutation hooks are not copied: the clone starts without observers.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		nodes: make([]node, len(g.nodes)),
		index: maps.Clone(g.index),
	}
	for i := 1; i < len(g.nodes); i++ {
		src := g.nodes[i]
		out.nodes[i] = node{
			id:    src.id,
			label: src.label,
			adj:   maps.Clone(src.adj),
			order: slices.Clone(src.order),
		}
	}

	return out
}
