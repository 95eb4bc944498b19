package workspace_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/coverage"
	"github.com/katalvlaran/flyover/internal/workspace"
)

func corridor(t *testing.T, n int) *core.Graph {
	t.Helper()
	b := core.NewBuilder(core.Meta{NX: n, NY: 1, ScaleX: 1, ScaleY: 1})
	for i := 0; i < n; i++ {
		require.NoError(t, b.AddNode(core.CellID{I: i}))
		if i > 0 {
			require.NoError(t, b.AddEdge(core.CellID{I: i - 1}, core.CellID{I: i}, 1))
		}
	}

	return b.Build()
}

func TestPlan_NoGraph(t *testing.T) {
	w := workspace.New(workspace.Options{})
	_, err := w.Plan(nil)
	assert.ErrorIs(t, err, workspace.ErrNoGraph)
	_, err = w.Route()
	assert.ErrorIs(t, err, workspace.ErrNoRoute)
}

func TestPlan_PublishesRoute(t *testing.T) {
	w := workspace.New(workspace.Options{TableMaxNodes: 100})
	w.SetGraph(corridor(t, 3))
	require.NotNil(t, w.Current().Table)

	st, err := w.Plan(nil)
	require.NoError(t, err)
	require.NotNil(t, st.Route)
	assert.Equal(t, 4.0, st.Route.Length)
	assert.Equal(t, w.Current().Version, st.Version)

	got, err := w.Route()
	require.NoError(t, err)
	assert.Equal(t, *st.Route, got)
}

func TestPlan_ExplicitStartIsStrict(t *testing.T) {
	w := workspace.New(workspace.Options{})
	w.SetGraph(corridor(t, 3))

	start := core.CellID{I: 2}
	st, err := w.Plan(&start)
	require.NoError(t, err)
	assert.Equal(t, start, st.Route.Nodes[0])
	require.NotNil(t, w.Current().Start)
	assert.Equal(t, start, *w.Current().Start)

	missing := core.CellID{I: 7}
	_, err = w.Plan(&missing)
	assert.ErrorIs(t, err, coverage.ErrStartNotFound)
	assert.Equal(t, start, *w.Current().Start, "rejected start is not designated")
}

func TestDesignatedStartFallsBackAfterRebuild(t *testing.T) {
	w := workspace.New(workspace.Options{})
	w.SetGraph(corridor(t, 5))
	w.SetStart(core.CellID{I: 4})
	w.SetGraph(corridor(t, 2))

	st, err := w.Plan(nil)
	require.NoError(t, err)
	assert.Equal(t, core.CellID{I: 0}, st.Route.Nodes[0])
}

func TestPlanFrom(t *testing.T) {
	w := workspace.New(workspace.Options{})
	w.SetGraph(corridor(t, 5))
	w.SetStart(core.CellID{I: 1})

	st, err := w.PlanFrom(core.CellID{I: 3})
	require.NoError(t, err)
	assert.Equal(t, core.CellID{I: 3}, st.Route.Nodes[0])
	assert.Equal(t, core.CellID{I: 3}, *st.Start, "vehicle cell becomes the designated start")

	st, err = w.PlanFrom(core.CellID{I: 9})
	require.NoError(t, err, "a cell outside the graph is not an error")
	assert.Equal(t, core.CellID{I: 3}, st.Route.Nodes[0], "designated start used instead")
}

func TestGraphChangeInvalidatesRoute(t *testing.T) {
	w := workspace.New(workspace.Options{})
	w.SetGraph(corridor(t, 3))
	_, err := w.Plan(nil)
	require.NoError(t, err)

	v := w.Current().Version
	w.SetGraph(corridor(t, 4))
	assert.Greater(t, w.Current().Version, v)
	_, err = w.Route()
	assert.ErrorIs(t, err, workspace.ErrNoRoute)

	_, err = w.Plan(nil)
	require.NoError(t, err)
	w.SetStart(core.CellID{I: 1})
	_, err = w.Route()
	assert.ErrorIs(t, err, workspace.ErrNoRoute, "start change invalidates the route")
}

func TestTableLimit(t *testing.T) {
	w := workspace.New(workspace.Options{TableMaxNodes: 3})
	w.SetGraph(corridor(t, 4))
	assert.Nil(t, w.Current().Table)
	w.SetGraph(nil)
	assert.Nil(t, w.Current().Graph)
}

func TestConcurrentPlansAndRebuilds(t *testing.T) {
	w := workspace.New(workspace.Options{})
	w.SetGraph(corridor(t, 6))
	graphs := []*core.Graph{corridor(t, 3), corridor(t, 4), corridor(t, 5), corridor(t, 6)}

	var wg sync.WaitGroup
	for k := 0; k < 8; k++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := w.Plan(nil)
			if err != nil {
				assert.True(t, errors.Is(err, workspace.ErrStale), "unexpected %v", err)
			}
		}()
		go func(g *core.Graph) {
			defer wg.Done()
			w.SetGraph(g)
		}(graphs[k%len(graphs)])
	}
	wg.Wait()

	// Whatever route survived belongs to the graph it was published with.
	cur := w.Current()
	if cur.Route != nil {
		for _, c := range cur.Route.Nodes {
			assert.True(t, cur.Graph.HasNode(c))
		}
	}
}
