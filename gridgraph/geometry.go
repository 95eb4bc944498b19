package gridgraph

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/flyover/core"
)

// Geometry is the cell lattice laid over the usable area. It is derived purely
// from its inputs; equal inputs always produce equal Geometry values.
type Geometry struct {
	Area   core.Rect // usable-area rectangle as supplied
	Inset  core.Rect // shrunk rectangle actually divided into cells
	NX, NY int
	CellW  float64 // cell width in pixels
	CellH  float64 // cell height in pixels
}

// NewGeometry derives the lattice for area at the given physical scale.
//
//	nx = max(1, floor(Length/ScaleX)), ny = max(1, floor(Width/ScaleY))
//
// The area is inset by 2% of its shorter side on every edge; when that leaves
// less than one pixel in either direction the original rectangle is used.
//
// Complexity: O(1).
func NewGeometry(area core.Rect, s Scale) (Geometry, error) {
	if !positive(s.Length) || !positive(s.Width) || !positive(s.ScaleX) || !positive(s.ScaleY) {
		return Geometry{}, ErrBadScale
	}
	if !finite(area.X) || !finite(area.Y) || !positive(area.W) || !positive(area.H) {
		return Geometry{}, ErrBadArea
	}

	nx := max(1, int(math.Floor(s.Length/s.ScaleX)))
	ny := max(1, int(math.Floor(s.Width/s.ScaleY)))

	return lattice(area, nx, ny), nil
}

// GeometryOf recovers the lattice a graph was built on from its metadata.
func GeometryOf(meta core.Meta) (Geometry, error) {
	if meta.NX < 1 || meta.NY < 1 {
		return Geometry{}, ErrBadScale
	}
	area := meta.Walls
	if !finite(area.X) || !finite(area.Y) || !positive(area.W) || !positive(area.H) {
		return Geometry{}, ErrBadArea
	}

	return lattice(area, meta.NX, meta.NY), nil
}

func lattice(area core.Rect, nx, ny int) Geometry {
	inset := math.Min(area.W, area.H) * insetRatio
	in := core.Rect{X: area.X + inset, Y: area.Y + inset, W: area.W - 2*inset, H: area.H - 2*inset}
	if in.W < 1 || in.H < 1 {
		in = area
	}

	return Geometry{
		Area:  area,
		Inset: in,
		NX:    nx,
		NY:    ny,
		CellW: in.W / float64(nx),
		CellH: in.H / float64(ny),
	}
}

// CellCenter returns the centre of cell c in image-pixel coordinates, the same
// space the obstacle rectangles are expressed in.
func (g Geometry) CellCenter(c core.CellID) r2.Point {
	return r2.Point{
		X: g.Inset.X + (float64(c.I)+0.5)*g.CellW,
		Y: g.Inset.Y + (float64(c.J)+0.5)*g.CellH,
	}
}

// CellAt maps an image-pixel point to the lattice cell containing it.
// Points outside the inset rectangle report false.
func (g Geometry) CellAt(p r2.Point) (core.CellID, bool) {
	if g.CellW <= 0 || g.CellH <= 0 {
		return core.CellID{}, false
	}
	c := core.CellID{
		I: int(math.Floor((p.X - g.Inset.X) / g.CellW)),
		J: int(math.Floor((p.Y - g.Inset.Y) / g.CellH)),
	}
	if !c.InBounds(g.NX, g.NY) {
		return core.CellID{}, false
	}

	return c, true
}

// Cells enumerates every lattice cell, column by column.
func (g Geometry) Cells() []core.CellID {
	out := make([]core.CellID, 0, g.NX*g.NY)
	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			out = append(out, core.CellID{I: i, J: j})
		}
	}

	return out
}

// toR2 converts a top-left anchored rectangle into closed intervals.
func toR2(r core.Rect) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: r.X, Hi: r.X + r.W},
		Y: r1.Interval{Lo: r.Y, Hi: r.Y + r.H},
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positive(v float64) bool { return finite(v) && v > 0 }
