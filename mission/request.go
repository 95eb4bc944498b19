package mission

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/coverage"
	"github.com/katalvlaran/flyover/snapshot"
)

// Waypoint is one route entry as the runner expects it.
type Waypoint struct {
	ID string `json:"id"`
	I  int    `json:"i"`
	J  int    `json:"j"`
}

// Request is the mission payload submitted to the runner.
type Request struct {
	Route            []Waypoint    `json:"route"`
	Meta             snapshot.Meta `json:"meta"`
	Height           float64       `json:"height"`
	AxisY            *Axis         `json:"axisY,omitempty"`
	ReturnStartIndex *int          `json:"return_start_index,omitempty"`
}

// NewRequest builds the runner payload for route.
// height is clamped with ClampHeight; a zero axis is omitted.
func NewRequest(route coverage.Route, meta core.Meta, height float64, axis Axis) (Request, error) {
	if len(route.Nodes) == 0 {
		return Request{}, ErrEmptyRoute
	}
	if err := axis.Validate(); err != nil {
		return Request{}, err
	}

	req := Request{
		Route:  make([]Waypoint, len(route.Nodes)),
		Meta:   snapshot.NewMeta(meta),
		Height: ClampHeight(height),
	}
	for k, c := range route.Nodes {
		req.Route[k] = Waypoint{ID: c.String(), I: c.I, J: c.J}
	}
	if !axis.IsZero() {
		req.AxisY = &axis
	}
	if route.ReturnStart != nil {
		idx := *route.ReturnStart
		if idx < 0 || idx >= len(route.Nodes) {
			return Request{}, fmt.Errorf("%w: %d of %d", ErrBadReturnStart, idx, len(route.Nodes))
		}
		req.ReturnStartIndex = &idx
	}

	return req, nil
}

// Cells returns the waypoint cells in route order.
func (r Request) Cells() []core.CellID {
	out := make([]core.CellID, len(r.Route))
	for k, w := range r.Route {
		out[k] = core.CellID{I: w.I, J: w.J}
	}

	return out
}

// LocalPoints converts the request's waypoints to metres; see LocalPoints.
func (r Request) LocalPoints() []r2.Point {
	return LocalPoints(r.Cells(), r.Meta.ScaleX, r.Meta.ScaleY, r.AxisY)
}
