package mission

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/flyover/core"
)

// LocalPoints converts cells to metric coordinates.
//
// Without an axis hint each cell maps to its centre ((i+½)·sx, (j+½)·sy).
// With a hint the frame is re-anchored at the first waypoint and rotated so the
// hint points along +Y; +X is the hint turned a quarter clockwise in image
// coordinates, where J grows downwards.
func LocalPoints(cells []core.CellID, sx, sy float64, axis *Axis) []r2.Point {
	pts := make([]r2.Point, len(cells))
	for k, c := range cells {
		pts[k] = r2.Point{X: (float64(c.I) + 0.5) * sx, Y: (float64(c.J) + 0.5) * sy}
	}
	if len(pts) == 0 || axis == nil || axis.IsZero() {
		return pts
	}

	yDir := r2.Point{X: float64(axis.DI), Y: float64(axis.DJ)}.Normalize()
	xDir := yDir.Ortho()
	origin := pts[0]
	for k, p := range pts {
		v := p.Sub(origin)
		pts[k] = r2.Point{X: v.Dot(xDir), Y: v.Dot(yDir)}
	}

	return pts
}
