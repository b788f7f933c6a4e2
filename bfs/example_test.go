package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/core"
)

// ExampleBFS demonstrates hop layering on a 3×3 grid with ids r*3+c+1.
func ExampleBFS() {
	g := core.NewGraph()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			id := int64(r*3 + c + 1)
			if c+1 < 3 {
				_ = g.AddEdge(id, id+1, 1)
			}
			if r+1 < 3 {
				_ = g.AddEdge(id, id+3, 1)
			}
		}
	}

	res, _ := bfs.BFS(g, 1)
	fmt.Println("order:", res.Order)
	fmt.Println("depth of 9:", res.Depth[9])

	// Output:
	// order: [1 2 4 3 5 7 6 8 9]
	// depth of 9: 4
}

// ExampleComponents lists the connected pieces of a small forest.
func ExampleComponents() {
	g := core.NewGraph()
	_ = g.AddEdge(10, 11, 1)
	_ = g.AddEdge(20, 21, 1)
	_ = g.AddEdge(21, 22, 1)

	comps, _ := bfs.Components(g)
	fmt.Println(comps)

	// Output:
	// [[10 11] [20 21 22]]
}
