package gridgraph

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/flyover/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrBadScale indicates a non-positive or non-finite length, width or cell size.
	ErrBadScale = fmt.Errorf("%w: gridgraph: scale values must be positive and finite", core.ErrInvalidArgument)
	// ErrBadArea indicates a usable-area rectangle without positive finite extent.
	ErrBadArea = fmt.Errorf("%w: gridgraph: usable area must have positive finite size", core.ErrInvalidArgument)
	// ErrBadObstacle indicates an obstacle rectangle with non-finite coordinates.
	ErrBadObstacle = fmt.Errorf("%w: gridgraph: obstacle rectangle must be finite", core.ErrInvalidArgument)
)

// insetRatio is the share of the shorter side trimmed from each edge of the
// usable area to stay clear of detection artefacts along the walls.
const insetRatio = 0.02

// Scale is the desired physical description of the area.
type Scale struct {
	Length float64 // physical extent along I (columns)
	Width  float64 // physical extent along J (rows)
	ScaleX float64 // physical cell size along I
	ScaleY float64 // physical cell size along J
}

// Topology is the opaque output of the image-analysis collaborator.
type Topology struct {
	Walls       core.Rect   // usable-area rectangle
	Obstacles   []core.Rect // shelves and other blocking rectangles
	ImageWidth  int
	ImageHeight int
}

// Options contains tunable parameters for Build.
type Options struct {
	// ObstacleBlocking removes cells whose centre falls inside an obstacle.
	ObstacleBlocking bool
	// Logger receives a debug record per build; nil means slog.Default().
	Logger *slog.Logger
}

// Option configures Build.
type Option func(*Options)

// WithObstacleBlocking toggles obstacle blocking (enabled by default).
func WithObstacleBlocking(on bool) Option {
	return func(o *Options) { o.ObstacleBlocking = on }
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns Options with obstacle blocking enabled.
func DefaultOptions() Options {
	return Options{ObstacleBlocking: true}
}
