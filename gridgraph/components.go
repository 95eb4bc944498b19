package gridgraph

import (
	"github.com/katalvlaran/flyover/bfs"
	"github.com/katalvlaran/flyover/core"
)

// Components finds the connected components of g.
// Components are listed in the order of their smallest node, and the nodes of
// each component in BFS discovery order from that node, so the output is
// deterministic for a given graph.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func Components(g *core.Graph) [][]core.CellID {
	seen := make(map[core.CellID]bool, g.NodeCount())
	var comps [][]core.CellID

	for _, start := range g.Nodes() {
		if seen[start] {
			continue
		}
		comp := ComponentOf(g, start)
		for _, c := range comp {
			seen[c] = true
		}
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf returns the component containing c in BFS order from c, or nil
// if c is not a node.
func ComponentOf(g *core.Graph, c core.CellID) []core.CellID {
	res, err := bfs.BFS(g, c)
	if err != nil {
		return nil
	}

	return res.Order
}
