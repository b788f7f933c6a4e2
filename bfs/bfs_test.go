package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/core"
)

// twoIslands builds 1-2-3 plus 4-5 and an isolated self-loop on 6.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 7))
	require.NoError(t, g.AddEdge(2, 3, 7))
	require.NoError(t, g.AddEdge(4, 5, 1))
	require.NoError(t, g.AddEdge(6, 6, 0))

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := twoIslands(t)
	_, err = bfs.BFS(g, 99)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	g := core.NewGraph()
	// Star 1→{2,3} with 3-4 hanging off; insertion order fixes indices.
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2, 4}, res.Order, "ascending index: 3 was registered before 2")
	assert.Equal(t, map[int64]int{1: 0, 3: 1, 2: 1, 4: 2}, res.Depth)
	assert.Equal(t, map[int64]int64{3: 1, 2: 1, 4: 3}, res.Parent)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, path)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := core.NewGraph()
	for i := int64(1); i < 6; i++ {
		require.NoError(t, g.AddEdge(i, i+1, i))
	}

	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, res.Order)

	heavy := func(_, _, w int64) bool { return w < 3 }
	res, err = bfs.BFS(g, 1, bfs.WithFilterNeighbor(heavy))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, res.Order)

	_, err = res.PathTo(6)
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestReachable_StopsAtComponent(t *testing.T) {
	g := twoIslands(t)
	ids, err := bfs.Reachable(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1, 3}, ids)

	ids, err = bfs.Reachable(g, 6)
	require.NoError(t, err)
	assert.Equal(t, []int64{6}, ids, "self-loop does not revisit")
}

func TestComponents(t *testing.T) {
	comps, err := bfs.Components(twoIslands(t))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 2, 3}, {4, 5}, {6}}, comps)

	comps, err = bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []int64
	_, err := bfs.BFS(twoIslands(t), 1, bfs.WithOnVisit(func(id int64, _ int) error {
		seen = append(seen, id)
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int64{1, 2}, seen)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(twoIslands(t), 1, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
