package stats_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/stats"
)

func ExampleCompute() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(1, 3, 2)
	_ = g.AddEdge(2, 3, 2)

	s := stats.Compute(g)
	fmt.Printf("nodes=%d edges=%d avg=%.2f weight=%d density=%.2f\n",
		s.NodeCount, s.EdgeCount, s.AvgDegree, s.TotalWeight, s.Density())

	// Output:
	// nodes=3 edges=3 avg=2.00 weight=6 density=1.00
}
