package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/flyover/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start cell is not a node.
	ErrStartNotFound = fmt.Errorf("%w: bfs: start node not found", core.ErrInvalidArgument)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: bfs: invalid option supplied", core.ErrInvalidArgument)

	// ErrNoPath is returned by PathTo for a cell the search did not reach.
	ErrNoPath = fmt.Errorf("%w: bfs: no path", core.ErrNotReachable)
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c core.CellID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor core.CellID) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(core.CellID, int) error { return nil },
		FilterNeighbor: func(_, _ core.CellID) bool { return true },
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

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c core.CellID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
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
func WithFilterNeighbor(fn func(curr, neighbor core.CellID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes in visit sequence.
//   - Depth: hop count from the start.
//   - Parent: predecessor in the BFS tree; the start has no entry.
type Result struct {
	Start  core.CellID
	Order  []core.CellID
	Depth  map[core.CellID]int
	Parent map[core.CellID]core.CellID
}

// Reached reports whether c was visited.
func (r *Result) Reached(c core.CellID) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo reconstructs the fewest-hop path from the start to dest.
func (r *Result) PathTo(dest core.CellID) ([]core.CellID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, r.Start, dest)
	}
	path := []core.CellID{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
