package gridgraph

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/flyover/core"
)

// Build constructs the traversable-cell graph for topo at the given scale.
//
// Steps:
//  1. Derive the lattice via NewGeometry.
//  2. Classify every cell centre against the obstacles.
//  3. Add a node per traversable cell.
//  4. For each node and each of E, W, S, N: if the neighbour is in bounds and
//     traversable, add an edge of length ScaleX (horizontal) or ScaleY (vertical).
//     The builder normalizes and deduplicates pairs, so the mirrored visit from
//     the neighbour is skipped.
//
// An empty traversable set yields an empty graph, not an error.
//
// Complexity: O(nx·ny·k + E log E) time, O(nx·ny) memory.
func Build(topo Topology, scale Scale, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	geom, err := NewGeometry(topo.Walls, scale)
	if err != nil {
		return nil, err
	}
	cls, err := NewClassifier(topo.Obstacles, cfg.ObstacleBlocking)
	if err != nil {
		return nil, err
	}

	b := core.NewBuilder(core.Meta{
		NX:          geom.NX,
		NY:          geom.NY,
		ScaleX:      scale.ScaleX,
		ScaleY:      scale.ScaleY,
		ImageWidth:  topo.ImageWidth,
		ImageHeight: topo.ImageHeight,
		Walls:       topo.Walls,
	})

	cells := cls.Traversable(geom)
	for _, c := range cells {
		if err = b.AddNode(c); err != nil {
			return nil, fmt.Errorf("gridgraph: add node %v: %w", c, err)
		}
	}

	for _, c := range cells {
		for _, d := range core.Offsets4 {
			n := c.Offset(d[0], d[1])
			if !n.InBounds(geom.NX, geom.NY) || !b.HasNode(n) || b.HasEdge(c, n) {
				continue
			}
			length := scale.ScaleX
			if d[0] == 0 {
				length = scale.ScaleY
			}
			if err = b.AddEdge(c, n, length); err != nil {
				return nil, fmt.Errorf("gridgraph: add edge %v-%v: %w", c, n, err)
			}
		}
	}

	g := b.Build()
	logger.Debug("grid graph built",
		"nx", geom.NX, "ny", geom.NY,
		"nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"blocked", geom.NX*geom.NY-g.NodeCount(),
		"obstacle_blocking", cfg.ObstacleBlocking)

	return g, nil
}
