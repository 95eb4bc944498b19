// Package dijkstra implements single-source shortest paths over a core.Graph.
//
// Overview:
//
//   - ShortestPaths computes the minimum physical distance from a source cell to
//     every node, plus a predecessor map for path reconstruction.
//   - A min-heap with lazy decrease-key always expands the closest frontier node.
//     Ties on distance are broken by CellID order, so for a fixed graph the
//     distances, predecessors and therefore every reconstructed path are
//     reproducible run to run.
//   - Unreachable nodes keep distance +Inf and have no predecessor entry.
//   - PathTo walks predecessors back from a target and fails with ErrNotReachable
//     rather than returning a partial path.
//   - AllPairs runs ShortestPaths from every node once and keeps the results in a
//     Table, trading O(V²) memory for repeated recomputation in the route planner.
//
// Complexity:
//
//   - ShortestPaths: O((V + E) log V) time, O(V + E) space.
//   - PathTo:        O(path length).
//   - AllPairs:      O(V (V + E) log V) time, O(V²) space.
//
// Error handling (sentinel errors):
//
//   - ErrSourceNotFound (wraps core.ErrInvalidArgument): source is not a node.
//   - ErrTargetNotFound (wraps core.ErrInvalidArgument): target is not a node.
//   - ErrBadMaxDistance (wraps core.ErrInvalidArgument): negative or NaN cap.
//   - ErrNotReachable   (wraps core.ErrNotReachable):   no path to the target.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPaths(g, core.CellID{I: 0, J: 0})
//	if err != nil {
//	    return err
//	}
//	path, err := res.PathTo(core.CellID{I: 2, J: 0})
package dijkstra
