// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Builder accumulates nodes and edges, enforces graph invariants, and
//       freezes them into an immutable Graph.
// Policy:
//   - Duplicate suppression is a set lookup on the normalized pair, never a scan.
//   - Build sorts everything once so the resulting Graph iterates deterministically.

package core

import (
	"fmt"
	"math"
	"slices"
)

// edgeKey is the normalized unordered pair used for duplicate suppression.
type edgeKey struct{ a, b CellID }

// normalize orders the endpoints so that a.Less(b).
func normalize(a, b CellID) edgeKey {
	if b.Less(a) {
		a, b = b, a
	}

	return edgeKey{a: a, b: b}
}

// Builder collects nodes and edges for a single Graph. A Builder is not safe for
// concurrent use and must not be reused after Build.
type Builder struct {
	meta  Meta
	nodes map[CellID]struct{}
	order []CellID
	edges map[edgeKey]float64
}

// NewBuilder returns an empty Builder that will stamp meta onto the built Graph.
// Complexity: O(1).
func NewBuilder(meta Meta) *Builder {
	return &Builder{
		meta:  meta,
		nodes: make(map[CellID]struct{}),
		edges: make(map[edgeKey]float64),
	}
}

// AddNode registers c as a node. Adding an existing node is a no-op.
// Returns ErrInvalidArgument for negative coordinates, or coordinates outside the
// lattice when Meta declares one (NX, NY > 0).
func (b *Builder) AddNode(c CellID) error {
	if c.I < 0 || c.J < 0 {
		return fmt.Errorf("%w: core: node %v has negative coordinates", ErrInvalidArgument, c)
	}
	if b.meta.NX > 0 && b.meta.NY > 0 && !c.InBounds(b.meta.NX, b.meta.NY) {
		return fmt.Errorf("%w: core: node %v outside %dx%d lattice", ErrInvalidArgument, c, b.meta.NX, b.meta.NY)
	}
	if _, ok := b.nodes[c]; ok {
		return nil
	}
	b.nodes[c] = struct{}{}
	b.order = append(b.order, c)

	return nil
}

// HasNode reports whether c has been added.
func (b *Builder) HasNode(c CellID) bool {
	_, ok := b.nodes[c]

	return ok
}

// AddEdge inserts the undirected edge {u, v} with the given length.
//
// Checks, in order:
//  1. length is positive and finite (ErrBadLength);
//  2. both endpoints are nodes (ErrNodeNotFound);
//  3. endpoints are 4-adjacent, which also rules out self-loops (ErrNotAdjacent);
//  4. the normalized pair is not present yet (ErrDuplicateEdge).
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v CellID, length float64) error {
	if !(length > 0) || math.IsInf(length, 0) {
		return fmt.Errorf("%w: %v-%v length=%g", ErrBadLength, u, v, length)
	}
	if !b.HasNode(u) {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, u)
	}
	if !b.HasNode(v) {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, v)
	}
	if !u.Adjacent(v) {
		return fmt.Errorf("%w: %v-%v", ErrNotAdjacent, u, v)
	}
	k := normalize(u, v)
	if _, ok := b.edges[k]; ok {
		return fmt.Errorf("%w: %v-%v", ErrDuplicateEdge, k.a, k.b)
	}
	b.edges[k] = length

	return nil
}

// HasEdge reports whether {u, v} has been added, in either orientation.
func (b *Builder) HasEdge(u, v CellID) bool {
	_, ok := b.edges[normalize(u, v)]

	return ok
}

// Build freezes the collected data into a Graph.
//
// Complexity: O(V log V + E log E) for the sorts.
func (b *Builder) Build() *Graph {
	nodes := slices.Clone(b.order)
	slices.SortFunc(nodes, CellID.Compare)

	index := make(map[CellID]int, len(nodes))
	for i, c := range nodes {
		index[c] = i
	}

	edges := make([]Edge, 0, len(b.edges))
	adjacency := make(map[CellID][]Neighbor, len(nodes))
	for k, length := range b.edges {
		edges = append(edges, Edge{From: k.a, To: k.b, Length: length})
		adjacency[k.a] = append(adjacency[k.a], Neighbor{Cell: k.b, Length: length})
		adjacency[k.b] = append(adjacency[k.b], Neighbor{Cell: k.a, Length: length})
	}
	slices.SortFunc(edges, compareEdges)
	for c := range adjacency {
		slices.SortFunc(adjacency[c], func(x, y Neighbor) int { return x.Cell.Compare(y.Cell) })
	}

	return &Graph{
		meta:      b.meta,
		nodes:     nodes,
		index:     index,
		edges:     edges,
		adjacency: adjacency,
	}
}

func compareEdges(x, y Edge) int {
	if r := x.From.Compare(y.From); r != 0 {
		return r
	}

	return x.To.Compare(y.To)
}
