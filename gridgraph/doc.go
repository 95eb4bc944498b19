// Package gridgraph turns a detected indoor topology into a core.Graph of
// traversable lattice cells.
//
// What:
//
//   - Geometry derives the cell lattice (nx × ny, inset usable rectangle, cell
//     pixel size) from the usable-area rectangle and the desired physical scale.
//   - Classifier decides occupancy: a cell is blocked iff its centre lies inside
//     any obstacle rectangle (inclusive bounds). Blocking can be switched off for
//     shelving layouts whose aisles stay traversable.
//   - Build adds one node per traversable cell and a 4-connectivity edge to every
//     traversable neighbour, weighted ScaleX horizontally and ScaleY vertically.
//   - Components reports the connected components of a built graph.
//
// Why:
//
//   - Inspection coverage: every traversable cell becomes a waypoint candidate.
//   - Diagnostics: components reveal areas walled off from the start cell.
//
// Complexity:
//
//   - NewGeometry: O(1).
//   - Build:       O(nx·ny·k + E log E), k = number of obstacles.
//   - Components:  O(V + E).
//
// Errors:
//
//   - ErrBadScale:    non-positive or non-finite physical dimensions or cell size.
//   - ErrBadArea:     usable-area rectangle with non-positive or non-finite size.
//   - ErrBadObstacle: obstacle rectangle with non-finite coordinates.
//
// All three wrap core.ErrInvalidArgument.
package gridgraph
