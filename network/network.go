// Package network is the serialized public surface of pathlab: one graph,
// one memoizing engine and one mutex, with structured logs and trace spans
// around the operations callers care about.
//
// core and dijkstra stay lock-free; Network is the host-side serializer.
// Every exported method holds the mutex for its full duration, including
// observer callbacks passed to Distance/AllPaths, which therefore must not
// call back into the Network.
package network

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/loader"
	"github.com/katalvlaran/pathlab/logging"
	"github.com/katalvlaran/pathlab/stats"
	"github.com/katalvlaran/pathlab/telemetry"
)

// Network guards a core.Graph and its dijkstra.Engine.
type Network struct {
	mu     sync.Mutex
	g      *core.Graph
	eng    *dijkstra.Engine
	log    *slog.Logger
	tracer trace.Tracer
	traced bool // tracer set by WithTracer, forwarded to the loader
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger; nil means discard.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		n.log = logging.OrDiscard(l)
	}
}

// WithTracer sets the tracer for network spans and for loads started through
// the Network. nil keeps the global "network" and "loader" scopes.
func WithTracer(t trace.Tracer) Option {
	return func(n *Network) {
		if t != nil {
			n.tracer = t
			n.traced = true
		}
	}
}

// New returns an empty Network.
func New(opts ...Option) *Network {
	g := core.NewGraph()
	n := &Network{
		g:      g,
		eng:    dijkstra.New(g),
		log:    logging.Discard(),
		tracer: telemetry.Tracer("network"),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// AddEdge inserts the undirected edge (a, b, w). See core.Graph.AddEdge.
func (n *Network) AddEdge(a, b, w int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.g.AddEdge(a, b, w); err != nil {
		var ce *core.ConflictError
		if errors.As(err, &ce) {
			n.log.Warn("edge conflict", "a", ce.IDA, "b", ce.IDB,
				"existing", ce.Existing, "proposed", ce.Proposed)
		} else {
			n.log.Warn("edge rejected", "a", a, "b", b, "weight", w, "err", err)
		}

		return err
	}
	n.log.Debug("edge added", "a", a, "b", b, "weight", w)

	return nil
}

// SetLabel assigns a display label; empty text restores the default.
// Unknown ids are ignored and reported with false.
func (n *Network) SetLabel(id int64, text string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.g.SetLabel(id, text)
}

// Label returns the display label of id (its decimal text when unset or unknown).
func (n *Network) Label(id int64) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.g.Label(id)
}

// Distance answers a shortest-path query, recomputing only when needed.
func (n *Network) Distance(ctx context.Context, src, dst int64, opts ...dijkstra.Option) dijkstra.Result {
	_, span := n.tracer.Start(ctx, "network.Distance", trace.WithAttributes(
		attribute.Int64("pathlab.source", src),
		attribute.Int64("pathlab.target", dst),
	))
	defer span.End()

	n.mu.Lock()
	res := n.eng.Distance(src, dst, opts...)
	nodes := n.g.NodeCount()
	n.mu.Unlock()

	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("pathlab.code", res.Code.String()),
			attribute.Int64("pathlab.distance", res.Distance),
			attribute.Bool("pathlab.recomputed", res.Recomputed),
		)
	}
	if res.Recomputed {
		n.log.Info("shortest paths recomputed", "source", src, "nodes", nodes)
	}
	if res.Code == dijkstra.InternalError {
		span.SetStatus(codes.Error, "path reconstruction failed")
		n.log.Error("path reconstruction failed", "source", src, "target", dst, "nodes", nodes)
	}

	return res
}

// Step is one observer notification translated to a node id.
type Step struct {
	ID       int64 `json:"id" yaml:"id"`
	Distance int64 `json:"distance" yaml:"distance"`
	Final    bool  `json:"final" yaml:"final"`
}

// DistanceSteps is Distance that also records the observer sequence by id.
// Steps is empty when the cached result was reused.
func (n *Network) DistanceSteps(ctx context.Context, src, dst int64) (dijkstra.Result, []Step) {
	var steps []Step
	obs := dijkstra.ObserverFunc(func(index int, d int64, final bool) {
		id, _ := n.g.IDOf(index) // mutex already held by Distance
		steps = append(steps, Step{ID: id, Distance: d, Final: final})
	})

	return n.Distance(ctx, src, dst, dijkstra.WithObserver(obs)), steps
}

// AllPaths enumerates up to limit tied shortest paths (limit <= 0: all).
func (n *Network) AllPaths(ctx context.Context, src, dst int64, limit int) ([][]int64, dijkstra.ResultCode) {
	_, span := n.tracer.Start(ctx, "network.AllPaths", trace.WithAttributes(
		attribute.Int64("pathlab.source", src),
		attribute.Int64("pathlab.target", dst),
		attribute.Int("pathlab.limit", limit),
	))
	defer span.End()

	n.mu.Lock()
	paths, code := n.eng.AllPaths(src, dst, limit)
	n.mu.Unlock()

	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("pathlab.code", code.String()),
			attribute.Int("pathlab.paths", len(paths)),
		)
	}
	if code == dijkstra.InternalError {
		span.SetStatus(codes.Error, "path enumeration failed")
		n.log.Error("path enumeration failed", "source", src, "target", dst)
	}

	return paths, code
}

// Parents returns the tied predecessors of id recorded by the last
// computation, without recomputing.
func (n *Network) Parents(id int64) []int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.eng.Parents(id)
}

// Neighbors returns a copy of id's neighbor → weight mapping.
func (n *Network) Neighbors(id int64) map[int64]int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.g.Neighbors(id)
}

// AllNodeIDs returns every id in insertion order.
func (n *Network) AllNodeIDs() []int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.g.IDs()
}

// HasNode reports whether id is known.
func (n *Network) HasNode(id int64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.g.HasNode(id)
}

// snapshot returns a deep copy of the graph so scans can run unlocked.
func (n *Network) snapshot() *core.Graph {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.g.Clone()
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.g.NodeCount()
}

// Stats computes aggregate metrics.
func (n *Network) Stats() stats.GraphStats {
	n.mu.Lock()
	defer n.mu.Unlock()

	return stats.Compute(n.g)
}

// Summary computes aggregate metrics plus component structure on a snapshot,
// so the component walk does not hold the mutex.
func (n *Network) Summary() stats.Summary {
	return stats.Summarize(n.snapshot())
}

// Components returns the connected components (see bfs.Components),
// computed on a snapshot.
func (n *Network) Components() [][]int64 {
	comps, _ := bfs.Components(n.snapshot())

	return comps
}

// Reachable returns the ids reachable from id in hop order.
func (n *Network) Reachable(ctx context.Context, id int64) ([]int64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return bfs.Reachable(n.g, id, bfs.WithContext(ctx))
}

// Clear drops every node and edge and invalidates cached paths.
func (n *Network) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.g.Clear()
	n.log.Info("graph cleared")
}

// Load ingests edges from r. The mutex is taken per edge, so queries may
// interleave with a long load. Ingestion is not transactional.
func (n *Network) Load(ctx context.Context, r io.Reader, opts ...loader.Option) (loader.Summary, error) {
	ctx, span := n.tracer.Start(ctx, "network.Load")
	defer span.End()

	opts = n.loaderOptions(opts)
	sum, err := loader.Load(ctx, r, n, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
	}

	return sum, err
}

// LoadFile is Load over a file, with byte-based progress.
func (n *Network) LoadFile(ctx context.Context, path string, opts ...loader.Option) (loader.Summary, error) {
	ctx, span := n.tracer.Start(ctx, "network.LoadFile", trace.WithAttributes(
		attribute.String("pathlab.path", path),
	))
	defer span.End()

	opts = n.loaderOptions(opts)
	sum, err := loader.LoadFile(ctx, path, n, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
	}

	return sum, err
}

// StartLoad runs LoadFile in the background and returns its Job.
func (n *Network) StartLoad(ctx context.Context, path string, opts ...loader.Option) *loader.Job {
	opts = n.loaderOptions(opts)
	job := loader.Start(ctx, path, n, opts...)
	n.log.Info("load started", "job", job.ID, "path", path)

	return job
}

// loaderOptions prepends the network's logger (and tracer, when set) so
// caller options still win.
func (n *Network) loaderOptions(opts []loader.Option) []loader.Option {
	base := []loader.Option{loader.WithLogger(n.log)}
	if n.traced {
		base = append(base, loader.WithTracer(n.tracer))
	}

	return append(base, opts...)
}

// Generate emits a fixture topology into the network.
func (n *Network) Generate(opts []builder.Option, cons ...builder.Constructor) error {
	return builder.Build(n, opts, cons...)
}
