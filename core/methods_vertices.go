// File: methods_vertices.go
// Role: Node registration, id/index translation, labels and enumeration.
//
// Determinism:
//   - IDs() returns identifiers in index (insertion) order.

package core

import "strconv"

// ensureNode returns the arena index for id, registering a new node with the
// next sequential index and the default label when id is unknown.
//
// Complexity: O(1) amortized.
func (g *Graph) ensureNode(id int64) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, node{
		id:    id,
		label: defaultLabel(id),
		adj:   make(map[int]int64),
	})
	g.index[id] = idx

	return idx
}

// IndexOf translates an external identifier to its arena index.
// Returns (NoIndex, false) for unknown identifiers.
// Complexity: O(1).
func (g *Graph) IndexOf(id int64) (int, bool) {
	idx, ok := g.index[id]
	if !ok {
		return NoIndex, false
	}

	return idx, true
}

// IDOf translates an arena index back to its external identifier.
// Returns (0, false) for NoIndex and out-of-range indices.
// Complexity: O(1).
func (g *Graph) IDOf(index int) (int64, bool) {
	if index <= NoIndex || index >= len(g.nodes) {
		return 0, false
	}

	return g.nodes[index].id, true
}

// HasNode reports whether id has been registered.
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.index[id]
	return ok
}

// NodeCount returns the number of registered nodes (the sentinel slot is not counted).
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes) - 1
}

// IDs returns every registered identifier in index order, which is the order
// of first reference through AddEdge. The returned slice is a fresh copy.
//
// Complexity: O(V).
func (g *Graph) IDs() []int64 {
	out := make([]int64, 0, g.NodeCount())
	for i := 1; i < len(g.nodes); i++ {
		out = append(out, g.nodes[i].id)
	}

	return out
}

// SetLabel assigns a display label to a registered node. An empty text
// restores the default (the decimal form of the identifier). Unknown
// identifiers are left untouched and reported with false.
//
// Labels are presentation data: changing one does not invalidate shortest
// path results, so mutation hooks are not run.
func (g *Graph) SetLabel(id int64, text string) bool {
	idx, ok := g.index[id]
	if !ok {
		return false
	}
	if text == "" {
		text = defaultLabel(id)
	}
	g.nodes[idx].label = text

	return true
}

// Label returns the display label of id. For unknown identifiers it returns
// the decimal form of id, the same text a fresh node would carry.
func (g *Graph) Label(id int64) string {
	idx, ok := g.index[id]
	if !ok {
		return defaultLabel(id)
	}

	return g.nodes[idx].label
}

// Degree returns the number of distinct neighbors stored for index, counting
// a self-loop once. Returns 0 for invalid indices.
func (g *Graph) Degree(index int) int {
	if index <= NoIndex || index >= len(g.nodes) {
		return 0
	}

	return len(g.nodes[index].order)
}

func defaultLabel(id int64) string {
	return strconv.FormatInt(id, 10)
}
