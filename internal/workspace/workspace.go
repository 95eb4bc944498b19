// Package workspace holds the current graph, designated start cell and planned
// route as one immutable state that is replaced whole.
package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/coverage"
	"github.com/katalvlaran/flyover/dijkstra"
)

// Sentinel errors for workspace operations.
var (
	// ErrNoGraph indicates an operation that needs a graph before one was set.
	ErrNoGraph = errors.New("workspace: no graph")
	// ErrNoRoute indicates an operation that needs a planned route.
	ErrNoRoute = errors.New("workspace: no route planned")
	// ErrStale indicates a plan computed against a state that has since been replaced.
	ErrStale = errors.New("workspace: state changed during planning")
)

// State is one immutable workspace version. Never modify a State obtained
// from Current; derive a new one instead.
type State struct {
	Version uint64
	Graph   *core.Graph
	Table   *dijkstra.Table // nil when the graph exceeds the table limit
	Start   *core.CellID
	Route   *coverage.Route
}

// Options configures a Workspace.
type Options struct {
	// TableMaxNodes enables an all-pairs distance table for graphs up to this size.
	TableMaxNodes int
	Logger        *slog.Logger
}

// Workspace publishes State values atomically.
type Workspace struct {
	state  atomic.Pointer[State]
	opts   Options
	logger *slog.Logger
}

// New returns an empty workspace.
func New(opts Options) *Workspace {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	w := &Workspace{opts: opts, logger: logger}
	w.state.Store(&State{})

	return w
}

// Current returns the current state.
func (w *Workspace) Current() *State { return w.state.Load() }

// SetGraph replaces the graph and drops the route. The designated start is kept.
func (w *Workspace) SetGraph(g *core.Graph) *State {
	var table *dijkstra.Table
	if g != nil && g.NodeCount() > 0 && g.NodeCount() <= w.opts.TableMaxNodes {
		var err error
		if table, err = dijkstra.AllPairs(g); err != nil {
			w.logger.Warn("distance table skipped", "error", err)
			table = nil
		}
	}

	return w.update(func(s State) State {
		s.Graph, s.Table, s.Route = g, table, nil
		return s
	})
}

// SetStart designates the start cell and drops the route.
func (w *Workspace) SetStart(c core.CellID) *State {
	return w.update(func(s State) State {
		s.Start, s.Route = &c, nil
		return s
	})
}

// Plan plans from the designated start (falling back to the first node) and
// publishes the route. When start is non-nil it must be a node of the graph
// and becomes the designated start. The returned State carries the route.
func (w *Workspace) Plan(start *core.CellID) (*State, error) {
	return w.plan(start, true)
}

// PlanFrom plans from c, the vehicle's last known cell. When c is a node it
// becomes the designated start; otherwise PlanFrom behaves like Plan(nil).
func (w *Workspace) PlanFrom(c core.CellID) (*State, error) {
	return w.plan(&c, false)
}

func (w *Workspace) plan(start *core.CellID, strict bool) (*State, error) {
	cur := w.state.Load()
	if cur.Graph == nil {
		return nil, ErrNoGraph
	}
	if start != nil {
		switch {
		case cur.Graph.HasNode(*start):
			cur = w.SetStart(*start)
		case strict:
			return nil, fmt.Errorf("%w: %v", coverage.ErrStartNotFound, *start)
		}
	}

	opts := []coverage.Option{coverage.WithLogger(w.logger), coverage.WithDistanceTable(cur.Table)}
	if cur.Start != nil {
		opts = append(opts, coverage.WithStart(*cur.Start))
	}
	if strict && start != nil {
		opts = append(opts, coverage.WithStrictStart())
	}
	route, err := coverage.Plan(cur.Graph, opts...)
	if err != nil {
		return nil, err
	}

	next := *cur
	next.Version = cur.Version + 1
	next.Route = &route
	if !w.state.CompareAndSwap(cur, &next) {
		w.logger.Info("plan discarded, workspace changed", "version", cur.Version)
		return nil, ErrStale
	}

	return &next, nil
}

// Route returns the last published route.
func (w *Workspace) Route() (coverage.Route, error) {
	cur := w.state.Load()
	if cur.Route == nil {
		return coverage.Route{}, ErrNoRoute
	}

	return *cur.Route, nil
}

// update applies fn to a copy of the current state until it publishes.
func (w *Workspace) update(fn func(State) State) *State {
	for {
		cur := w.state.Load()
		next := fn(*cur)
		next.Version = cur.Version + 1
		if w.state.CompareAndSwap(cur, &next) {
			return &next
		}
	}
}
