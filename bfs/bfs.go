package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/flyover/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	c     core.CellID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start, ignoring edge lengths.
// Returns ErrStartNotFound (a nil graph has no nodes), ErrOptionViolation,
// the context error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start core.CellID, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.CellID, 0, n),
			Depth:  make(map[core.CellID]int, n),
			Parent: make(map[core.CellID]core.CellID, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{c: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.c)
		if err := w.opts.OnVisit(item.c, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.c, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.graph.NeighborsOf(item.c) {
		if _, seen := w.res.Depth[nb.Cell]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.c, nb.Cell) {
			continue
		}
		w.res.Depth[nb.Cell] = next
		w.res.Parent[nb.Cell] = item.c
		w.queue = append(w.queue, queueItem{c: nb.Cell, depth: next})
	}
}
