// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start cell; edge lengths
//     are ignored.
//   - Result holds Order (visit sequence), Depth (hops from the start) and
//     Parent (BFS tree).
//   - WithOnVisit may abort the search with an error.
//   - WithFilterNeighbor skips individual edges; WithMaxDepth bounds the search.
//
// Why
//
//   - Discover reachable regions: gridgraph.Components and ComponentOf are
//     built on it, so a start cell's coverage set is known before planning.
//
// Determinism
//
//	core.Graph returns neighbors in CellID order and BFS enqueues them in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, core.CellID{I: 0, J: 0})
//	if err != nil {
//	    // ErrStartNotFound, ErrOptionViolation, ctx.Err() or a hook error
//	}
package bfs
