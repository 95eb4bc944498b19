// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, CellID, Rect, Meta, Edge and Graph declarations.
// Policy:
//   - Graph has no exported mutators; Builder is the only way to populate one.
//   - All derived sentinels wrap ErrInvalidArgument so callers can branch once.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates malformed input geometry, identifiers or edges.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotReachable indicates that no path connects the requested nodes.
	ErrNotReachable = errors.New("not reachable")

	// ErrNodeNotFound indicates an operation referenced a cell that is not a node.
	ErrNodeNotFound = fmt.Errorf("%w: core: node not found", ErrInvalidArgument)

	// ErrDuplicateEdge indicates an edge for the same unordered pair already exists.
	ErrDuplicateEdge = fmt.Errorf("%w: core: duplicate edge", ErrInvalidArgument)

	// ErrNotAdjacent indicates edge endpoints that differ by other than one unit on one axis.
	ErrNotAdjacent = fmt.Errorf("%w: core: endpoints are not 4-adjacent", ErrInvalidArgument)

	// ErrBadLength indicates a non-positive or non-finite edge length.
	ErrBadLength = fmt.Errorf("%w: core: edge length must be positive and finite", ErrInvalidArgument)
)

// CellID addresses one lattice cell: I is the column, J is the row, both 0-indexed.
// Two CellIDs are equal iff both coordinates match, so CellID is usable as a map key.
type CellID struct {
	I int
	J int
}

// Rect is an axis-aligned rectangle in image-pixel units, top-left anchored.
type Rect struct {
	X, Y, W, H float64
}

// Meta carries the lattice description the graph was built from.
type Meta struct {
	NX, NY      int     // lattice columns and rows
	ScaleX      float64 // physical cell size along I
	ScaleY      float64 // physical cell size along J
	ImageWidth  int     // source image width in pixels
	ImageHeight int     // source image height in pixels
	Walls       Rect    // usable-area rectangle of the source topology
}

// Edge is an undirected connection between two 4-adjacent cells.
// From is always ordered before To (From.Less(To)).
type Edge struct {
	From   CellID
	To     CellID
	Length float64
}

// Neighbor is one adjacency entry: the cell reached and the edge length.
type Neighbor struct {
	Cell   CellID
	Length float64
}

// Graph is the immutable traversable-cell graph.
//
// nodes and edges are sorted; index maps a node to its position in nodes;
// adjacency lists are sorted by neighbour CellID.
type Graph struct {
	meta      Meta
	nodes     []CellID
	index     map[CellID]int
	edges     []Edge
	adjacency map[CellID][]Neighbor
}
