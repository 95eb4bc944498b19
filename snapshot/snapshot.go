package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/flyover/core"
)

// Sentinel errors for snapshot decoding.
var (
	// ErrMalformed indicates bytes that are not a snapshot document.
	ErrMalformed = fmt.Errorf("%w: snapshot: malformed document", core.ErrInvalidArgument)
	// ErrBadNode indicates a node whose id disagrees with its coordinates, or a repeated node.
	ErrBadNode = fmt.Errorf("%w: snapshot: bad node", core.ErrInvalidArgument)
	// ErrBadEdge indicates an edge that violates a graph invariant.
	ErrBadEdge = fmt.Errorf("%w: snapshot: bad edge", core.ErrInvalidArgument)
)

// Node is one traversable cell.
type Node struct {
	ID string `json:"id"`
	I  int    `json:"i"`
	J  int    `json:"j"`
}

// Edge is one undirected connection between node ids.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Length float64 `json:"length"`
}

// Meta mirrors core.Meta; Walls is [x, y, w, h].
type Meta struct {
	NX          int        `json:"nx"`
	NY          int        `json:"ny"`
	ScaleX      float64    `json:"scaleX"`
	ScaleY      float64    `json:"scaleY"`
	ImageWidth  int        `json:"imageWidth"`
	ImageHeight int        `json:"imageHeight"`
	Walls       [4]float64 `json:"walls"`
}

// Document is the persisted graph shape.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Meta  *Meta  `json:"meta"`
}

// IsZero reports whether d is the "no graph" document.
func (d Document) IsZero() bool {
	return d.Meta == nil && len(d.Nodes) == 0 && len(d.Edges) == 0
}

// FromGraph encodes g. A nil graph yields the "no graph" document.
// Nodes and edges keep the graph's sorted order, so encoding is deterministic.
func FromGraph(g *core.Graph) Document {
	doc := Document{Nodes: []Node{}, Edges: []Edge{}}
	if g == nil {
		return doc
	}

	for _, c := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, Node{ID: c.String(), I: c.I, J: c.J})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From.String(), To: e.To.String(), Length: e.Length})
	}
	meta := NewMeta(g.Meta())
	doc.Meta = &meta

	return doc
}

// NewMeta converts core metadata to its wire form.
func NewMeta(m core.Meta) Meta {
	return Meta{
		NX:          m.NX,
		NY:          m.NY,
		ScaleX:      m.ScaleX,
		ScaleY:      m.ScaleY,
		ImageWidth:  m.ImageWidth,
		ImageHeight: m.ImageHeight,
		Walls:       [4]float64{m.Walls.X, m.Walls.Y, m.Walls.W, m.Walls.H},
	}
}

// Core converts m back to core metadata.
func (m Meta) Core() core.Meta {
	return core.Meta{
		NX:          m.NX,
		NY:          m.NY,
		ScaleX:      m.ScaleX,
		ScaleY:      m.ScaleY,
		ImageWidth:  m.ImageWidth,
		ImageHeight: m.ImageHeight,
		Walls:       core.Rect{X: m.Walls[0], Y: m.Walls[1], W: m.Walls[2], H: m.Walls[3]},
	}
}

// Graph decodes d into a validated graph. The "no graph" document yields nil.
func (d Document) Graph() (*core.Graph, error) {
	if d.IsZero() {
		return nil, nil
	}

	var meta core.Meta
	if d.Meta != nil {
		meta = d.Meta.Core()
	}

	b := core.NewBuilder(meta)
	for k, n := range d.Nodes {
		c := core.CellID{I: n.I, J: n.J}
		if n.ID != c.String() {
			return nil, fmt.Errorf("%w: nodes[%d]: id %q does not match (%d, %d)", ErrBadNode, k, n.ID, n.I, n.J)
		}
		if b.HasNode(c) {
			return nil, fmt.Errorf("%w: nodes[%d]: duplicate %q", ErrBadNode, k, n.ID)
		}
		if err := b.AddNode(c); err != nil {
			return nil, fmt.Errorf("%w: nodes[%d]: %w", ErrBadNode, k, err)
		}
	}
	for k, e := range d.Edges {
		from, err := core.ParseCellID(e.From)
		if err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrBadEdge, k, err)
		}
		to, err := core.ParseCellID(e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrBadEdge, k, err)
		}
		if err = b.AddEdge(from, to, e.Length); err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrBadEdge, k, err)
		}
	}

	return b.Build(), nil
}

// Marshal encodes g as snapshot JSON.
func Marshal(g *core.Graph) ([]byte, error) {
	return json.Marshal(FromGraph(g))
}

// Unmarshal decodes and validates snapshot JSON. The "no graph" document yields nil.
func Unmarshal(data []byte) (*core.Graph, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return doc.Graph()
}
