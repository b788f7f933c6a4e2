package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// queueItem pairs an arena index with its hop depth.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates mutable BFS state for one traversal.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g from startID.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartNotFound, the context's
// error on cancellation, or an OnVisit error wrapped with the node id.
// On error the partial Result is still returned.
func BFS(g *core.Graph, startID int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, ok := g.IndexOf(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, startID)
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, core.NoIndex)

	return w.res, w.loop()
}

// Reachable returns the ids reachable from startID in BFS visit order,
// startID first.
func Reachable(g *core.Graph, startID int64, opts ...Option) ([]int64, error) {
	res, err := BFS(g, startID, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Components partitions g into connected components. Each component is in
// BFS order from its smallest index; components are ordered by that index.
// Only WithContext and WithOnVisit are meaningful here.
func Components(g *core.Graph, opts ...Option) ([][]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := newWalker(g, o)
	var out [][]int64
	for idx := 1; idx <= g.NodeCount(); idx++ {
		if w.visited[idx] {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(idx, 0, core.NoIndex)
		if err := w.loop(); err != nil {
			return out, err
		}
		out = append(out, w.res.Order[from:len(w.res.Order):len(w.res.Order)])
	}

	return out, nil
}

func newWalker(g *core.Graph, o Options) *walker {
	n := g.NodeCount()

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n+1),
		res: &Result{
			Order:  make([]int64, 0, n),
			Depth:  make(map[int64]int, n),
			Parent: make(map[int64]int64, n),
		},
	}
}

// enqueue marks index visited at depth d and records its parent.
func (w *walker) enqueue(index, d, parent int) {
	w.visited[index] = true
	id, _ := w.graph.IDOf(index)
	w.res.Depth[id] = d
	if parent != core.NoIndex {
		pid, _ := w.graph.IDOf(parent)
		w.res.Parent[id] = pid
	}
	w.queue = append(w.queue, queueItem{index: index, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		id, _ := w.graph.IDOf(item.index)
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		w.expand(item, id)
	}

	return nil
}

// expand enqueues every unseen neighbor of item that passes the filter and
// depth limit.
func (w *walker) expand(item queueItem, id int64) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.graph.EachNeighbor(item.index, func(nb int, weight int64) bool {
		if w.visited[nb] {
			return true
		}
		nbID, _ := w.graph.IDOf(nb)
		if !w.opts.FilterNeighbor(id, nbID, weight) {
			return true
		}
		w.enqueue(nb, next, item.index)

		return true
	})
}
