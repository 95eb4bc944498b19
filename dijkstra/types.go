package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flyover/core"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrSourceNotFound indicates that the source cell is not a node of the graph.
	ErrSourceNotFound = fmt.Errorf("%w: dijkstra: source node not found in graph", core.ErrInvalidArgument)

	// ErrTargetNotFound indicates that a path was requested to a cell that is not a node.
	ErrTargetNotFound = fmt.Errorf("%w: dijkstra: target node not found in graph", core.ErrInvalidArgument)

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = fmt.Errorf("%w: dijkstra: MaxDistance must be non-negative", core.ErrInvalidArgument)

	// ErrNotReachable indicates that no path connects source and target.
	ErrNotReachable = fmt.Errorf("%w: dijkstra: target not reachable from source", core.ErrNotReachable)
)

// Options configures ShortestPaths.
//
// MaxDistance – nodes whose distance would exceed this value are left at +Inf.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithMaxDistance caps exploration at max. Validated by ShortestPaths.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Result holds the outcome of one single-source run.
//
// Dist has an entry for every node of the graph (+Inf when unreachable).
// Prev[v] == u means the chosen shortest path to v arrives from u; the source and
// unreachable nodes have no entry.
type Result struct {
	Source core.CellID
	Dist   map[core.CellID]float64
	Prev   map[core.CellID]core.CellID
}

// Distance returns the shortest distance to c, or +Inf if c is unknown or unreachable.
func (r *Result) Distance(c core.CellID) float64 {
	if d, ok := r.Dist[c]; ok {
		return d
	}

	return math.Inf(1)
}

// Reachable reports whether c has a finite distance from the source.
func (r *Result) Reachable(c core.CellID) bool {
	return !math.IsInf(r.Distance(c), 1)
}
