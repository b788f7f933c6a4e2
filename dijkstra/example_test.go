package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
)

// ExampleEngine_Distance demonstrates a query, a cached follow-up and the
// invalidation caused by a new edge.
func ExampleEngine_Distance() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(2, 3, 4)
	_ = g.AddEdge(1, 3, 10)

	eng := dijkstra.New(g)
	r := eng.Distance(1, 3)
	fmt.Println(r.Code, r.Distance, r.Path, r.Recomputed)

	r = eng.Distance(1, 2)
	fmt.Println(r.Code, r.Distance, r.Path, r.Recomputed)

	_ = g.AddEdge(1, 4, 1)
	_ = g.AddEdge(4, 3, 1)
	r = eng.Distance(1, 3)
	fmt.Println(r.Code, r.Distance, r.Path, r.Recomputed)

	// Output:
	// FOUND 8 [1 2 3] true
	// FOUND 4 [1 2] false
	// FOUND 2 [1 4 3] true
}

// ExampleEngine_AllPaths lists both shortest routes around a unit square.
func ExampleEngine_AllPaths() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(2, 4, 1)
	_ = g.AddEdge(3, 4, 1)

	paths, code := dijkstra.New(g).AllPaths(1, 4, 0)
	fmt.Println(code, paths)

	// Output:
	// FOUND [[1 2 4] [1 3 4]]
}
