// Package coverage plans closed full-coverage inspection tours over a core.Graph.
//
// What:
//
//   - Plan picks a start cell, then repeatedly flies to the nearest unvisited
//     node (by shortest-path distance) until every reachable node is covered.
//   - Consecutive visits are stitched with their shortest paths, so the route is
//     a walk along graph edges; junction nodes are not repeated.
//   - If the tour does not already end at the start, the shortest path back is
//     appended and Route.ReturnStart marks where that closing segment begins.
//
// Why:
//
//   - The exact problem is a TSP variant; the greedy heuristic runs interactively
//     on warehouse-sized lattices and is fully deterministic.
//
// Determinism:
//
//   - Distance ties are broken by CellID order (column, then row), and the
//     shortest-path engine breaks its own ties the same way. Identical graph and
//     start always produce an identical Route.
//
// Limitations:
//
//   - Nodes outside the start's connected component are never visited; the
//     greedy loop stops early and lists them in Route.Unvisited. This is not an
//     error.
//
// Complexity:
//
//   - O(V) single-source runs of O((V + E) log V) each, plus an O(V) scan per
//     step. A precomputed dijkstra.Table replaces the runs with lookups.
//
// Errors:
//
//   - ErrStartNotFound (wraps core.ErrInvalidArgument): only with WithStrictStart.
//   - Errors from the dijkstra package are wrapped with the failing step.
package coverage
