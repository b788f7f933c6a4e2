// Package bfs provides tunable options, results and error definitions
// for hop-count breadth-first traversal over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start id is not registered.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node outside the search tree.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when the traversal starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnVisit is called when a node is visited. A non-nil error aborts the
	// traversal and is returned wrapped.
	OnVisit func(id int64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this hop count.
	MaxDepth int

	// FilterNeighbor skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor, weight int64) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filter and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int64, int) error { return nil },
		FilterNeighbor: func(_, _, _ int64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback; returning an error stops the walk.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d hops. d == 0 means no limit; d < 0 is
// an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor, weight int64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: ids in visit sequence.
//   - Depth: hop count from the start per reached id.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []int64
	Depth  map[int64]int
	Parent map[int64]int64
}

// PathTo reconstructs the fewest-hops path from the start to dest.
func (r *Result) PathTo(dest int64) ([]int64, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := []int64{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
