// SPDX-License-Identifier: MIT
//
// Package stats derives aggregate metrics from a core.Graph by a single scan
// of its adjacency.
//
// Counting rules:
//   - Each undirected edge is stored on both endpoints, so EdgeCount and
//     TotalWeight are half the per-node sums (integer division).
//   - A self-loop is stored once, contributes 1 to its node's degree and
//     therefore counts as half an edge, truncated.
//   - MinDegree is 0 for an empty graph.
//   - TotalWeight is exact while the graph holds fewer than 2^19 edges at
//     core.MaxWeight; larger sums wrap.
package stats

import (
	"math"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/core"
)

// GraphStats is the aggregate view of one graph.
type GraphStats struct {
	NodeCount   int     `json:"node_count" yaml:"node_count"`
	EdgeCount   int     `json:"edge_count" yaml:"edge_count"`
	AvgDegree   float64 `json:"avg_degree" yaml:"avg_degree"`
	MaxDegree   int     `json:"max_degree" yaml:"max_degree"`
	MinDegree   int     `json:"min_degree" yaml:"min_degree"`
	TotalWeight int64   `json:"total_weight" yaml:"total_weight"`
}

// Density returns EdgeCount / (n(n-1)/2), or 0 when fewer than two nodes exist.
func (s GraphStats) Density() float64 {
	if s.NodeCount < 2 {
		return 0
	}
	n := float64(s.NodeCount)

	return float64(s.EdgeCount) / (n * (n - 1) / 2)
}

// Compute scans g once.
// Complexity: O(V + E).
func Compute(g *core.Graph) GraphStats {
	n := g.NodeCount()
	s := GraphStats{NodeCount: n}
	if n == 0 {
		return s
	}

	var totalDegree int
	var totalWeight int64
	s.MinDegree = math.MaxInt
	for idx := 1; idx <= n; idx++ {
		deg := g.Degree(idx)
		totalDegree += deg
		s.MaxDegree = max(s.MaxDegree, deg)
		s.MinDegree = min(s.MinDegree, deg)
		g.EachNeighbor(idx, func(_ int, w int64) bool {
			totalWeight += w
			return true
		})
	}
	s.EdgeCount = totalDegree / 2
	s.TotalWeight = totalWeight / 2
	s.AvgDegree = float64(totalDegree) / float64(n)

	return s
}

// Summary extends GraphStats with connectivity figures.
type Summary struct {
	GraphStats `yaml:",inline"`

	Density          float64 `json:"density" yaml:"density"`
	Components       int     `json:"components" yaml:"components"`
	LargestComponent int     `json:"largest_component" yaml:"largest_component"`
	Isolated         int     `json:"isolated" yaml:"isolated"`
	SelfLoops        int     `json:"self_loops" yaml:"self_loops"`
}

// Summarize computes GraphStats plus component structure. Isolated counts
// single-node components, which here means nodes whose only edge is a
// self-loop.
// Complexity: O(V + E).
func Summarize(g *core.Graph) Summary {
	sum := Summary{GraphStats: Compute(g)}
	sum.Density = sum.GraphStats.Density()

	comps, _ := bfs.Components(g) // background context, no hooks: cannot fail
	sum.Components = len(comps)
	for _, c := range comps {
		sum.LargestComponent = max(sum.LargestComponent, len(c))
		if len(c) == 1 {
			sum.Isolated++
		}
	}
	for idx := 1; idx <= g.NodeCount(); idx++ {
		if _, loop := g.Weight(idx, idx); loop {
			sum.SelfLoops++
		}
	}

	return sum
}
