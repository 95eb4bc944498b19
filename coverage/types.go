package coverage

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/dijkstra"
)

// ErrStartNotFound indicates a requested start cell that is not a node of the graph.
var ErrStartNotFound = fmt.Errorf("%w: coverage: start node not found in graph", core.ErrInvalidArgument)

// Route is a planned closed coverage walk.
type Route struct {
	// Nodes is the full walk, start first. Empty iff the graph is empty.
	Nodes []core.CellID
	// Length is the sum of traversed edge lengths.
	Length float64
	// ReturnStart is the index in Nodes of the first node of the closing
	// segment back to the start; nil when no closing segment was needed.
	ReturnStart *int
	// Order lists the cells in the order the greedy loop selected them.
	Order []core.CellID
	// Unvisited lists nodes unreachable from the start, sorted.
	Unvisited []core.CellID
}

// Start returns the first node of the route.
func (r Route) Start() (core.CellID, bool) {
	if len(r.Nodes) == 0 {
		return core.CellID{}, false
	}

	return r.Nodes[0], true
}

// Complete reports whether every node of the planned graph was visited.
func (r Route) Complete() bool { return len(r.Unvisited) == 0 }

// At returns the cell at waypoint index idx, or false when idx is out of range.
func (r Route) At(idx int) (core.CellID, bool) {
	if idx < 0 || idx >= len(r.Nodes) {
		return core.CellID{}, false
	}

	return r.Nodes[idx], true
}

// Options configures Plan.
type Options struct {
	// Start is the designated start cell; nil means the first node.
	Start *core.CellID
	// Strict turns an absent Start into ErrStartNotFound instead of a fallback.
	Strict bool
	// Table, when set, supplies precomputed shortest paths for the same graph.
	Table *dijkstra.Table
	// Logger receives plan diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// Option configures Plan.
type Option func(*Options)

// WithStart designates the start cell (typically the vehicle's current position).
func WithStart(c core.CellID) Option {
	return func(o *Options) { o.Start = &c }
}

// WithStrictStart rejects a designated start that is not a node.
func WithStrictStart() Option {
	return func(o *Options) { o.Strict = true }
}

// WithDistanceTable reuses an all-pairs table built from the same graph.
func WithDistanceTable(t *dijkstra.Table) Option {
	return func(o *Options) { o.Table = t }
}

// WithLogger sets the logger used for plan diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns lenient Options with no designated start.
func DefaultOptions() Options {
	return Options{}
}
