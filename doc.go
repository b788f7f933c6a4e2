// Package pathlab is an in-memory shortest-path laboratory for weighted,
// undirected graphs keyed by int64 node ids.
//
// 🚀 What is in the box?
//
//	• core:      the graph store (index arena, sorted adjacency, conflict detection)
//	• dijkstra:  a memoizing single-source engine with tie tracking and an observer
//	• bfs:       hop order, reachability and connected components
//	• stats:     node/edge/degree/weight aggregates
//	• network:   the mutex-guarded facade with logging and tracing
//	• loader:    edge-list ingestion with progress and background jobs
//	• builder:   deterministic fixture topologies
//	• report:    text, JSON and YAML rendering
//	• cmd/pathlab: the command-line front end
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
// With unit weights there are two shortest 1→4 routes. Distance returns
// 1→2→4 (parents are recorded in neighbor order) and AllPaths returns both.
//
//	go install github.com/katalvlaran/pathlab/cmd/pathlab@latest
package pathlab
