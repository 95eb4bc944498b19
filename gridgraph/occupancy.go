package gridgraph

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/flyover/core"
)

// Classifier decides which lattice cells are traversable.
type Classifier struct {
	obstacles []r2.Rect
	blocking  bool
}

// NewClassifier validates obstacles and returns a Classifier. With blocking
// disabled every in-bounds cell is traversable regardless of obstacles.
func NewClassifier(obstacles []core.Rect, blocking bool) (*Classifier, error) {
	rects := make([]r2.Rect, 0, len(obstacles))
	for _, o := range obstacles {
		if !finite(o.X) || !finite(o.Y) || !finite(o.W) || !finite(o.H) {
			return nil, ErrBadObstacle
		}
		rects = append(rects, toR2(o))
	}

	return &Classifier{obstacles: rects, blocking: blocking}, nil
}

// Occupied reports whether p lies inside at least one obstacle, bounds included.
// Always false when blocking is disabled.
func (c *Classifier) Occupied(p r2.Point) bool {
	if !c.blocking {
		return false
	}
	for _, r := range c.obstacles {
		if r.ContainsPoint(p) {
			return true
		}
	}

	return false
}

// Traversable returns the cells of geom whose centre is not occupied,
// in column-major enumeration order.
//
// Complexity: O(nx·ny·k).
func (c *Classifier) Traversable(geom Geometry) []core.CellID {
	cells := geom.Cells()
	out := cells[:0]
	for _, cell := range cells {
		if c.Occupied(geom.CellCenter(cell)) {
			continue
		}
		out = append(out, cell)
	}

	return out
}
