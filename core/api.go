// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors over an immutable Graph.
// Policy:
//   - No mutation, no hidden state; slices handed out are copies unless noted.
//   - A nil *Graph behaves as the empty graph so callers need no special case.

package core

import "slices"

// Empty returns a Graph with no nodes or edges carrying meta.
func Empty(meta Meta) *Graph {
	return NewBuilder(meta).Build()
}

// Meta returns the lattice metadata the graph was built from.
func (g *Graph) Meta() Meta {
	if g == nil {
		return Meta{}
	}

	return g.meta
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.nodes)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return len(g.edges)
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool { return g.NodeCount() == 0 }

// Nodes returns all nodes sorted by CellID (column, then row).
// Complexity: O(V) copy.
func (g *Graph) Nodes() []CellID {
	if g == nil {
		return nil
	}

	return slices.Clone(g.nodes)
}

// First returns the first node in enumeration order, or false for an empty graph.
func (g *Graph) First() (CellID, bool) {
	if g.IsEmpty() {
		return CellID{}, false
	}

	return g.nodes[0], true
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E) copy.
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}

	return slices.Clone(g.edges)
}

// HasNode reports whether c is a node.
// Complexity: O(1).
func (g *Graph) HasNode(c CellID) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[c]

	return ok
}

// IndexOf returns the position of c in Nodes(), or -1.
func (g *Graph) IndexOf(c CellID) int {
	if g == nil {
		return -1
	}
	if i, ok := g.index[c]; ok {
		return i
	}

	return -1
}

// NeighborsOf returns the adjacency of c sorted by neighbour CellID.
// The returned slice is shared with the graph and must not be modified.
// Unknown cells yield nil.
// Complexity: O(1).
func (g *Graph) NeighborsOf(c CellID) []Neighbor {
	if g == nil {
		return nil
	}

	return g.adjacency[c]
}

// EdgeLength returns the length of edge {u, v} and whether it exists.
// Complexity: O(deg(u)) with deg ≤ 4.
func (g *Graph) EdgeLength(u, v CellID) (float64, bool) {
	for _, n := range g.NeighborsOf(u) {
		if n.Cell == v {
			return n.Length, true
		}
	}

	return 0, false
}

// HasEdge reports whether {u, v} is an edge, in either orientation.
func (g *Graph) HasEdge(u, v CellID) bool {
	_, ok := g.EdgeLength(u, v)

	return ok
}
