package mission

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/flyover/core"
)

// Sentinel errors for mission operations.
var (
	// ErrEmptyRoute indicates a mission or playback request without waypoints.
	ErrEmptyRoute = fmt.Errorf("%w: mission: route is empty", core.ErrInvalidArgument)
	// ErrBadAxis indicates an axis hint that is not a unit 4-neighbour offset.
	ErrBadAxis = fmt.Errorf("%w: mission: axis must be a unit 4-neighbour offset", core.ErrInvalidArgument)
	// ErrBadReturnStart indicates a closing index outside the route.
	ErrBadReturnStart = fmt.Errorf("%w: mission: return start index out of range", core.ErrInvalidArgument)
	// ErrPlaybackActive indicates Start was called while a playback is running.
	ErrPlaybackActive = errors.New("mission: playback already running")
	// ErrRunner indicates a runner request that failed or was rejected.
	ErrRunner = errors.New("mission: runner request failed")
)

// Flight height bounds in metres.
const (
	DefaultHeight = 1.5
	MinHeight     = 0.5
	MaxHeight     = 10.0
)

// Default cadences.
const (
	DefaultPollInterval     = 200 * time.Millisecond
	DefaultPollTimeout      = time.Second
	DefaultPlaybackInterval = 400 * time.Millisecond
)

// ClampHeight returns h limited to [MinHeight, MaxHeight].
// Zero, NaN and ±Inf mean "unset" and yield DefaultHeight.
func ClampHeight(h float64) float64 {
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return DefaultHeight
	}

	return math.Max(MinHeight, math.Min(MaxHeight, h))
}

// Axis designates the reference "forward" direction as the offset between two
// adjacent cells. The zero Axis means no hint.
type Axis struct {
	DI int `json:"di"`
	DJ int `json:"dj"`
}

// IsZero reports whether a carries no hint.
func (a Axis) IsZero() bool { return a.DI == 0 && a.DJ == 0 }

// Validate accepts the zero Axis and the four unit offsets.
func (a Axis) Validate() error {
	switch a {
	case Axis{}, Axis{DI: 1}, Axis{DI: -1}, Axis{DJ: 1}, Axis{DJ: -1}:
		return nil
	}

	return fmt.Errorf("%w: got {%d, %d}", ErrBadAxis, a.DI, a.DJ)
}

// Status is one runner status report. Negative indices mean "not reported".
type Status struct {
	Active        bool
	Available     bool
	WaypointIndex int
	NodeIndex     int
}

// Index returns the route position the runner is at: the waypoint index when
// reported, otherwise the node index.
func (s Status) Index() int {
	if s.WaypointIndex >= 0 {
		return s.WaypointIndex
	}

	return s.NodeIndex
}
