package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/flyover/core"
)

// ShortestPaths computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. MaxDistance must be ≥ 0 (ErrBadMaxDistance).
//  2. g must contain source (ErrSourceNotFound); a nil graph contains nothing.
//
// Edge weights are positive by construction (core.Builder rejects anything
// else), so no negative-weight scan is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source core.CellID, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.MaxDistance) || cfg.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	V := g.NodeCount()
	r := &runner{
		g:       g,
		maxDist: cfg.MaxDistance,
		dist:    make(map[core.CellID]float64, V),
		prev:    make(map[core.CellID]core.CellID, V),
		visited: make(map[core.CellID]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init(source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	maxDist float64
	dist    map[core.CellID]float64
	prev    map[core.CellID]core.CellID
	visited map[core.CellID]bool
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init(source core.CellID) {
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the closest unvisited node until the heap drains or the next
// distance exceeds the cap.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.maxDist {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves neighbours of u. Only strictly shorter candidates replace the
// current distance, so the first (lowest-ordered) predecessor wins on ties.
func (r *runner) relax(u core.CellID) {
	du := r.dist[u]
	for _, n := range r.g.NeighborsOf(u) {
		if r.visited[n.Cell] {
			continue
		}
		nd := du + n.Length
		if nd > r.maxDist || nd >= r.dist[n.Cell] {
			continue
		}
		r.dist[n.Cell] = nd
		r.prev[n.Cell] = u
		heap.Push(&r.pq, &nodeItem{id: n.Cell, dist: nd})
	}
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	id   core.CellID
	dist float64
}

// nodePQ is a min-heap ordered by distance, then by CellID for determinism.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Less(pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
