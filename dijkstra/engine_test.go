// Package dijkstra_test contains unit tests for the shortest-path engine:
// tie tracking, cache invalidation, result codes and observer sequencing.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
)

type edge struct{ a, b, w int64 }

// graphOf builds a graph from edges in the given order.
func graphOf(t testing.TB, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.a, e.b, e.w))
	}

	return g
}

type step struct {
	index int
	dist  int64
	final bool
}

// recorder collects observer calls.
type recorder struct{ steps []step }

func (r *recorder) Visit(index int, dist int64, final bool) {
	r.steps = append(r.steps, step{index, dist, final})
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_NilGraphPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrNilGraph.Error(), func() { dijkstra.New(nil) })
}

func TestCalculate_EmptyGraph(t *testing.T) {
	eng := dijkstra.New(core.NewGraph())
	require.ErrorIs(t, eng.Calculate(1), dijkstra.ErrEmptyGraph)
}

func TestCalculate_UnknownSource(t *testing.T) {
	eng := dijkstra.New(graphOf(t, edge{1, 2, 1}))
	err := eng.Calculate(42)
	require.ErrorIs(t, err, dijkstra.ErrUnknownNode)

	var une *dijkstra.UnknownNodeError
	require.ErrorAs(t, err, &une)
	assert.Equal(t, int64(42), une.ID)
	st, _ := eng.State()
	assert.Equal(t, dijkstra.StateUninitialized, st)
}

// ------------------------------------------------------------------------
// 2. Result codes
// ------------------------------------------------------------------------

func TestDistance_Triangle(t *testing.T) {
	g := graphOf(t, edge{1, 2, 5}, edge{1, 3, 5}, edge{2, 3, 1})
	eng := dijkstra.New(g)

	r := eng.Distance(2, 3)
	assert.Equal(t, dijkstra.Found, r.Code)
	assert.Equal(t, int64(1), r.Distance)
	assert.Equal(t, []int64{2, 3}, r.Path)

	r = eng.Distance(1, 3)
	assert.Equal(t, dijkstra.Found, r.Code)
	assert.Equal(t, int64(5), r.Distance)
	assert.Equal(t, []int64{1, 3}, r.Path)
	assert.Equal(t, []int64{1}, eng.Parents(3), "1→2→3 costs 6, not a tie")
}

func TestDistance_TieKeepsAllParentsInOrder(t *testing.T) {
	// Square 1-2-4 / 1-3-4, all unit weights: two shortest paths to 4.
	g := graphOf(t, edge{1, 2, 1}, edge{1, 3, 1}, edge{2, 4, 1}, edge{3, 4, 1})
	eng := dijkstra.New(g)

	r := eng.Distance(1, 4)
	require.Equal(t, dijkstra.Found, r.Code)
	assert.Equal(t, int64(2), r.Distance)
	assert.Equal(t, []int64{1, 2, 4}, r.Path, "first recorded parent wins")
	assert.Equal(t, []int64{2, 3}, eng.Parents(4))

	paths, code := eng.AllPaths(1, 4, 0)
	require.Equal(t, dijkstra.Found, code)
	assert.Equal(t, [][]int64{{1, 2, 4}, {1, 3, 4}}, paths)

	paths, _ = eng.AllPaths(1, 4, 1)
	assert.Equal(t, [][]int64{{1, 2, 4}}, paths)

	// Repeated queries reconstruct the identical path.
	for range 3 {
		assert.Equal(t, r.Path, eng.Distance(1, 4).Path)
	}
}

func TestDistance_StrictImprovementReplacesParents(t *testing.T) {
	g := graphOf(t, edge{1, 2, 10}, edge{1, 3, 1}, edge{3, 2, 1})
	eng := dijkstra.New(g)

	r := eng.Distance(1, 2)
	assert.Equal(t, int64(2), r.Distance)
	assert.Equal(t, []int64{1, 3, 2}, r.Path)
	assert.Equal(t, []int64{3}, eng.Parents(2))
}

func TestDistance_Unreachable(t *testing.T) {
	eng := dijkstra.New(graphOf(t, edge{1, 2, 1}, edge{3, 4, 1}))

	r := eng.Distance(1, 4)
	assert.Equal(t, dijkstra.Unreachable, r.Code)
	assert.Equal(t, core.Unreachable, r.Distance)
	assert.Empty(t, r.Path)

	paths, code := eng.AllPaths(1, 4, 0)
	assert.Equal(t, dijkstra.Unreachable, code)
	assert.Nil(t, paths)

	d, ok := eng.DistanceTo(4)
	assert.True(t, ok)
	assert.Equal(t, core.Unreachable, d)
}

func TestDistance_MaxWeightChainStaysReachable(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge(1, 2, core.Unreachable-1), core.ErrWeightOutOfRange)
	require.NoError(t, g.AddEdge(1, 2, core.MaxWeight))
	require.NoError(t, g.AddEdge(2, 3, core.MaxWeight))
	require.NoError(t, g.AddEdge(3, 4, 5))

	r := dijkstra.New(g).Distance(1, 4)
	require.Equal(t, dijkstra.Found, r.Code)
	assert.Equal(t, 2*core.MaxWeight+5, r.Distance)
	assert.Equal(t, []int64{1, 2, 3, 4}, r.Path)
}

func TestDistance_UnknownNode(t *testing.T) {
	eng := dijkstra.New(graphOf(t, edge{1, 2, 1}))

	for _, pair := range [][2]int64{{999, 1}, {1, 999}, {999, 999}} {
		r := eng.Distance(pair[0], pair[1])
		assert.Equal(t, dijkstra.NodeNotFound, r.Code, "pair %v", pair)
		assert.Empty(t, r.Path)
	}
	_, code := eng.AllPaths(999, 1, 0)
	assert.Equal(t, dijkstra.NodeNotFound, code)
}

func TestDistance_SelfLoop(t *testing.T) {
	g := graphOf(t, edge{5, 5, 0}, edge{5, 6, 2})
	eng := dijkstra.New(g)

	r := eng.Distance(5, 5)
	assert.Equal(t, dijkstra.FoundTrivial, r.Code)
	assert.Equal(t, int64(0), r.Distance)
	assert.Equal(t, []int64{5}, r.Path)
	st, _ := eng.State()
	assert.Equal(t, dijkstra.StateUninitialized, st, "trivial case leaves the cache alone")

	r = eng.Distance(5, 6)
	assert.Equal(t, dijkstra.Found, r.Code)
	assert.Equal(t, int64(2), r.Distance)
	assert.Equal(t, []int64{5, 6}, r.Path)
	assert.Empty(t, eng.Parents(5))
}

// ------------------------------------------------------------------------
// 3. Cache
// ------------------------------------------------------------------------

func TestDistance_CacheInvalidation(t *testing.T) {
	g := graphOf(t, edge{1, 2, 5}, edge{1, 3, 5}, edge{2, 3, 1})
	eng := dijkstra.New(g)

	r := eng.Distance(2, 3)
	require.True(t, r.Recomputed)
	st, src := eng.State()
	require.Equal(t, dijkstra.StateValid, st)
	idx2, _ := g.IndexOf(2)
	assert.Equal(t, idx2, src)

	r = eng.Distance(2, 1)
	assert.False(t, r.Recomputed, "same source reuses the cache")
	assert.Equal(t, int64(5), r.Distance)

	require.NoError(t, g.AddEdge(3, 4, 1))
	st, _ = eng.State()
	assert.Equal(t, dijkstra.StateUninitialized, st)

	r = eng.Distance(2, 4)
	assert.True(t, r.Recomputed)
	assert.Equal(t, dijkstra.Found, r.Code)
	assert.Equal(t, int64(2), r.Distance)
	assert.Equal(t, []int64{2, 3, 4}, r.Path)
}

func TestDistance_ConflictDoesNotInvalidate(t *testing.T) {
	g := graphOf(t, edge{1, 2, 1})
	eng := dijkstra.New(g)
	eng.Distance(1, 2)

	require.ErrorIs(t, g.AddEdge(1, 2, 9), core.ErrConflict)
	st, _ := eng.State()
	assert.Equal(t, dijkstra.StateValid, st)
}

func TestDistance_ClearInvalidates(t *testing.T) {
	g := graphOf(t, edge{1, 2, 1})
	eng := dijkstra.New(g)
	eng.Distance(1, 2)

	g.Clear()
	st, _ := eng.State()
	assert.Equal(t, dijkstra.StateUninitialized, st)
	assert.Equal(t, dijkstra.NodeNotFound, eng.Distance(1, 2).Code)
	assert.ErrorIs(t, eng.Calculate(1), dijkstra.ErrEmptyGraph)
}

func TestReadersNeverRecompute(t *testing.T) {
	eng := dijkstra.New(graphOf(t, edge{1, 2, 1}))
	assert.Nil(t, eng.Parents(2))
	_, ok := eng.DistanceTo(2)
	assert.False(t, ok)

	require.NoError(t, eng.Calculate(1))
	d, ok := eng.DistanceTo(2)
	assert.True(t, ok)
	assert.Equal(t, int64(1), d)
	assert.Equal(t, []int64{1}, eng.Parents(2))
}

// ------------------------------------------------------------------------
// 4. Observer
// ------------------------------------------------------------------------

func TestObserver_Sequence(t *testing.T) {
	g := graphOf(t, edge{1, 2, 5}, edge{1, 3, 5}, edge{2, 3, 1})
	eng := dijkstra.New(g)
	rec := &recorder{}

	eng.Distance(2, 3, dijkstra.WithObserver(rec))

	// Indices: 1→1, 2→2, 3→3.
	want := []step{
		{2, 0, false}, // source
		{1, 5, false}, // seed
		{3, 1, false}, // seed
		{3, 1, false}, // visit
		{1, 5, false}, // visit
		{2, 0, true},  // done
	}
	assert.Equal(t, want, rec.steps)

	rec.steps = nil
	eng.Distance(2, 1, dijkstra.WithObserver(rec))
	assert.Empty(t, rec.steps, "cached query runs no steps")

	eng.Distance(2, 2, dijkstra.WithObserver(rec))
	assert.Equal(t, []step{{2, 0, true}}, rec.steps)
}

func TestObserver_ImprovementStep(t *testing.T) {
	g := graphOf(t, edge{1, 2, 10}, edge{1, 3, 1}, edge{3, 2, 1})
	rec := &recorder{}
	eng := dijkstra.New(g, dijkstra.WithObserver(rec))

	require.NoError(t, eng.Calculate(1))
	want := []step{
		{1, 0, false},
		{2, 10, false},
		{3, 1, false},
		{3, 1, false},
		{2, 2, false}, // improvement 10 → 2
		{2, 2, false},
		{1, 0, true},
	}
	assert.Equal(t, want, rec.steps)
}

func TestResultCode_String(t *testing.T) {
	assert.Equal(t, "FOUND", dijkstra.Found.String())
	assert.Equal(t, "FOUND_TRIVIAL", dijkstra.FoundTrivial.String())
	assert.Equal(t, "UNREACHABLE", dijkstra.Unreachable.String())
	assert.Equal(t, "NODE_NOT_FOUND", dijkstra.NodeNotFound.String())
	assert.Equal(t, "INTERNAL_ERROR", dijkstra.InternalError.String())
	assert.Equal(t, "ResultCode(99)", dijkstra.ResultCode(99).String())
	assert.True(t, dijkstra.FoundTrivial.OK())
	assert.False(t, dijkstra.Unreachable.OK())
}
