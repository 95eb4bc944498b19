// Package core provides the immutable grid graph shared by every planning stage:
// cells, edges, lattice metadata and the Builder that assembles them.
//
// The Graph G = (V,E) has these properties:
//
//   - Nodes are lattice cells addressed by CellID{I, J} (column, row).
//     CellID is a comparable composite key with a total order (I first, then J)
//     and a lossless text form "i_j" used by the snapshot format.
//   - Edges are undirected and weighted by physical distance (float64 metres).
//     An edge only joins 4-adjacent cells, exists at most once per unordered pair,
//     and never loops. Each Edge is stored normalized (From < To).
//   - A Graph is immutable once Build returns it. Rebuilding produces a new Graph;
//     callers swap the pointer, they never edit fields in place.
//
// Why immutable?
//
//   - Planning is a pure function of (graph, start); readers need no locks.
//   - Replacing the whole value makes scale/topology changes atomic for every
//     subsequent planning call.
//
// Determinism:
//
//   - Nodes() and Edges() return sorted slices; NeighborsOf() is sorted by CellID.
//
// Errors:
//
//	ErrInvalidArgument - malformed input (bad cell text, bad edge, bad geometry).
//	ErrNotReachable    - a path was requested between disconnected nodes.
//	ErrNodeNotFound    - an edge endpoint or query referenced an unknown cell.
//	ErrDuplicateEdge   - an edge between the same unordered pair was already added.
//	ErrNotAdjacent     - edge endpoints are not 4-neighbours.
//
// ErrNodeNotFound, ErrDuplicateEdge and ErrNotAdjacent all wrap ErrInvalidArgument.
package core
