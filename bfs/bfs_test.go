package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/bfs"
	"github.com/katalvlaran/flyover/core"
)

func cell(i, j int) core.CellID { return core.CellID{I: i, J: j} }

// lattice builds an nx×ny 4-connected grid with unit edges, skipping holes.
func lattice(t *testing.T, nx, ny int, holes ...core.CellID) *core.Graph {
	t.Helper()
	skip := make(map[core.CellID]bool, len(holes))
	for _, h := range holes {
		skip[h] = true
	}
	b := core.NewBuilder(core.Meta{NX: nx, NY: ny, ScaleX: 1, ScaleY: 1})
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if !skip[cell(i, j)] {
				require.NoError(t, b.AddNode(cell(i, j)))
			}
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			c := cell(i, j)
			if skip[c] {
				continue
			}
			if r := c.Offset(1, 0); i+1 < nx && !skip[r] {
				require.NoError(t, b.AddEdge(c, r, 1))
			}
			if d := c.Offset(0, 1); j+1 < ny && !skip[d] {
				require.NoError(t, b.AddEdge(c, d, 1))
			}
		}
	}

	return b.Build()
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, cell(0, 0))
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	g := lattice(t, 2, 2)
	_, err = bfs.BFS(g, cell(5, 5))
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = bfs.BFS(g, cell(0, 0), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleNode(t *testing.T) {
	res, err := bfs.BFS(lattice(t, 1, 1), cell(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []core.CellID{cell(0, 0)}, res.Order)
	assert.Equal(t, 0, res.Depth[cell(0, 0)])
	assert.Empty(t, res.Parent)
}

func TestBFS_DepthsAndPath(t *testing.T) {
	// 3×3 with the centre removed: a ring of 8 cells.
	g := lattice(t, 3, 3, cell(1, 1))
	res, err := bfs.BFS(g, cell(0, 0))
	require.NoError(t, err)

	assert.Len(t, res.Order, 8)
	assert.Equal(t, 4, res.Depth[cell(2, 2)])
	assert.False(t, res.Reached(cell(1, 1)))

	path, err := res.PathTo(cell(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []core.CellID{cell(0, 0), cell(0, 1), cell(0, 2), cell(1, 2), cell(2, 2)}, path)

	_, err = res.PathTo(cell(1, 1))
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	assert.ErrorIs(t, err, core.ErrNotReachable)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := lattice(t, 5, 1)
	res, err := bfs.BFS(g, cell(0, 0), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.CellID{cell(0, 0), cell(1, 0), cell(2, 0)}, res.Order)

	blocked := func(_, n core.CellID) bool { return n != cell(3, 0) }
	res, err = bfs.BFS(g, cell(0, 0), bfs.WithFilterNeighbor(blocked))
	require.NoError(t, err)
	assert.Equal(t, []core.CellID{cell(0, 0), cell(1, 0), cell(2, 0)}, res.Order)
}

func TestBFS_HookErrorAndCancel(t *testing.T) {
	g := lattice(t, 4, 1)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, cell(0, 0), bfs.WithOnVisit(func(c core.CellID, _ int) error {
		if c == cell(2, 0) {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, cell(0, 0), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
