package coverage

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/dijkstra"
)

// Plan computes a closed coverage walk over g.
//
// Steps:
//  1. Resolve the start: the designated cell if it is a node, otherwise the
//     first node in enumeration order (or ErrStartNotFound in strict mode).
//  2. From the current tail, select the unvisited node with the smallest
//     shortest-path distance; ties go to the smaller CellID. Stop when no
//     unvisited node is reachable.
//  3. Append the shortest path tail → selected, skipping the shared junction.
//  4. If the tail is not the start, append the path back and record its index.
//
// An empty graph yields a zero Route and no error.
func Plan(g *core.Graph, opts ...Option) (Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	began := time.Now()
	route, err := plan(g, cfg)
	planDuration.Observe(time.Since(began).Seconds())

	switch {
	case err != nil:
		planTotal.WithLabelValues("error").Inc()
		return Route{}, err
	case len(route.Nodes) == 0:
		planTotal.WithLabelValues("empty").Inc()
	case !route.Complete():
		planTotal.WithLabelValues("partial").Inc()
		logger.Warn("coverage route is partial",
			"start", route.Nodes[0].String(),
			"unvisited", len(route.Unvisited))
	default:
		planTotal.WithLabelValues("complete").Inc()
	}
	routeWaypoints.Observe(float64(len(route.Nodes)))
	logger.Debug("coverage route planned",
		"nodes", g.NodeCount(),
		"waypoints", len(route.Nodes),
		"length", route.Length,
		"elapsed", time.Since(began))

	return route, nil
}

func plan(g *core.Graph, cfg Options) (Route, error) {
	start, ok := g.First()
	if !ok {
		return Route{}, nil
	}
	if cfg.Start != nil {
		switch {
		case g.HasNode(*cfg.Start):
			start = *cfg.Start
		case cfg.Strict:
			return Route{}, fmt.Errorf("%w: %v", ErrStartNotFound, *cfg.Start)
		}
	}

	p := &planner{
		g:       g,
		table:   cfg.Table,
		nodes:   g.Nodes(),
		visited: make(map[core.CellID]bool, g.NodeCount()),
		route:   Route{Nodes: []core.CellID{start}, Order: []core.CellID{start}},
	}
	p.visited[start] = true
	remaining := len(p.nodes) - 1

	tail := start
	for remaining > 0 {
		res, err := p.from(tail)
		if err != nil {
			return Route{}, err
		}
		next, found := p.nearest(res)
		if !found {
			break
		}
		if err = p.extend(res, next); err != nil {
			return Route{}, err
		}
		p.visited[next] = true
		p.route.Order = append(p.route.Order, next)
		remaining--
		tail = next
	}

	if tail != start {
		res, err := p.from(tail)
		if err != nil {
			return Route{}, err
		}
		idx := len(p.route.Nodes)
		if err = p.extend(res, start); err != nil {
			return Route{}, err
		}
		p.route.ReturnStart = &idx
	}

	for _, v := range p.nodes {
		if !p.visited[v] {
			p.route.Unvisited = append(p.route.Unvisited, v)
		}
	}

	return p.route, nil
}

// planner holds the mutable state of one Plan call.
type planner struct {
	g       *core.Graph
	table   *dijkstra.Table
	nodes   []core.CellID // sorted; scan order doubles as the tie-break
	visited map[core.CellID]bool
	route   Route
}

// from returns shortest paths from src, using the table when it knows src.
func (p *planner) from(src core.CellID) (*dijkstra.Result, error) {
	if res, ok := p.table.From(src); ok {
		return res, nil
	}
	res, err := dijkstra.ShortestPaths(p.g, src)
	if err != nil {
		return nil, fmt.Errorf("coverage: shortest paths from %v: %w", src, err)
	}

	return res, nil
}

// nearest returns the unvisited node closest to res.Source.
// Strict < over the sorted scan keeps the smallest CellID among equals.
func (p *planner) nearest(res *dijkstra.Result) (core.CellID, bool) {
	var (
		best  core.CellID
		bestD = math.Inf(1)
		found bool
	)
	for _, v := range p.nodes {
		if p.visited[v] {
			continue
		}
		if d := res.Distance(v); d < bestD {
			best, bestD, found = v, d, true
		}
	}

	return best, found
}

// extend appends the path res.Source → target without repeating res.Source
// and adds the traversed edge lengths to the route.
func (p *planner) extend(res *dijkstra.Result, target core.CellID) error {
	path, err := res.PathTo(target)
	if err != nil {
		return fmt.Errorf("coverage: path %v -> %v: %w", res.Source, target, err)
	}
	for k := 1; k < len(path); k++ {
		l, ok := p.g.EdgeLength(path[k-1], path[k])
		if !ok {
			return fmt.Errorf("coverage: hop %v -> %v: %w", path[k-1], path[k], core.ErrNodeNotFound)
		}
		p.route.Length += l
	}
	p.route.Nodes = append(p.route.Nodes, path[1:]...)

	return nil
}
