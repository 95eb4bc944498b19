package snapshot

import (
	"fmt"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/gridgraph"
)

// ErrBadTopology indicates a topology document without a usable-area rectangle.
var ErrBadTopology = fmt.Errorf("%w: snapshot: topology needs walls", core.ErrInvalidArgument)

// Topology is the image-analysis collaborator's output.
type Topology struct {
	Walls       []float64   `json:"walls"`
	Shelves     [][]float64 `json:"shelves"`
	ImageWidth  int         `json:"image_width"`
	ImageHeight int         `json:"image_height"`
}

// Topology converts t into the builder's input.
func (t Topology) Topology() (gridgraph.Topology, error) {
	walls, ok := rect(t.Walls)
	if !ok {
		return gridgraph.Topology{}, fmt.Errorf("%w: got %d values", ErrBadTopology, len(t.Walls))
	}
	out := gridgraph.Topology{
		Walls:       walls,
		Obstacles:   make([]core.Rect, 0, len(t.Shelves)),
		ImageWidth:  t.ImageWidth,
		ImageHeight: t.ImageHeight,
	}
	for k, s := range t.Shelves {
		r, ok := rect(s)
		if !ok {
			return gridgraph.Topology{}, fmt.Errorf("%w: shelves[%d] has %d values", gridgraph.ErrBadObstacle, k, len(s))
		}
		out.Obstacles = append(out.Obstacles, r)
	}

	return out, nil
}

func rect(v []float64) (core.Rect, bool) {
	if len(v) != 4 {
		return core.Rect{}, false
	}

	return core.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, true
}
