package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/dijkstra"
	"github.com/katalvlaran/flyover/gridgraph"
	"github.com/katalvlaran/flyover/internal/workspace"
	"github.com/katalvlaran/flyover/pkg/response"
	"github.com/katalvlaran/flyover/snapshot"
)

// errOffGrid indicates an image point outside the graph's lattice.
var errOffGrid = fmt.Errorf("%w: api: point is outside the grid", core.ErrInvalidArgument)

// scaleJSON is the physical scale of a build request.
type scaleJSON struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	ScaleX float64 `json:"scale_x"`
	ScaleY float64 `json:"scale_y"`
}

type buildRequest struct {
	Topology         snapshot.Topology `json:"topology"`
	Scale            scaleJSON         `json:"scale"`
	ObstacleBlocking *bool             `json:"obstacle_blocking"`
}

type cellRequest struct {
	I *int `json:"i"`
	J *int `json:"j"`
}

// cell validates r; both coordinates are required and non-negative.
func (r cellRequest) cell() (core.CellID, error) {
	if r.I == nil || r.J == nil {
		return core.CellID{}, fmt.Errorf("%w: i and j are required", core.ErrInvalidArgument)
	}
	if *r.I < 0 || *r.J < 0 {
		return core.CellID{}, fmt.Errorf("%w: i and j must be non-negative", core.ErrInvalidArgument)
	}

	return core.CellID{I: *r.I, J: *r.J}, nil
}

// startRequest names the start either as a cell or as an image-pixel point.
type startRequest struct {
	cellRequest
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// resolve returns the requested cell, mapping a pixel point through the
// lattice of g.
func (r startRequest) resolve(g *core.Graph) (core.CellID, error) {
	if r.X == nil && r.Y == nil {
		return r.cell()
	}
	if r.X == nil || r.Y == nil {
		return core.CellID{}, fmt.Errorf("%w: x and y are required together", core.ErrInvalidArgument)
	}
	if g == nil {
		return core.CellID{}, workspace.ErrNoGraph
	}
	geom, err := gridgraph.GeometryOf(g.Meta())
	if err != nil {
		return core.CellID{}, err
	}
	cell, ok := geom.CellAt(r2.Point{X: *r.X, Y: *r.Y})
	if !ok {
		return core.CellID{}, fmt.Errorf("%w: (%g, %g)", errOffGrid, *r.X, *r.Y)
	}

	return cell, nil
}

func nodeOf(c core.CellID) snapshot.Node {
	return snapshot.Node{ID: c.String(), I: c.I, J: c.J}
}

// getGraph handles GET /api/v1/graph
func (s *Server) getGraph(c *gin.Context) {
	response.Success(c, snapshot.FromGraph(s.Workspace.Current().Graph))
}

// buildGraph handles POST /api/v1/graph/build
func (s *Server) buildGraph(c *gin.Context) {
	var req buildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	topo, err := req.Topology.Topology()
	if err != nil {
		fail(c, "Invalid topology", err)
		return
	}
	blocking := s.ObstacleBlocking
	if req.ObstacleBlocking != nil {
		blocking = *req.ObstacleBlocking
	}

	g, err := gridgraph.Build(topo, gridgraph.Scale{
		Length: req.Scale.Length,
		Width:  req.Scale.Width,
		ScaleX: req.Scale.ScaleX,
		ScaleY: req.Scale.ScaleY,
	}, gridgraph.WithObstacleBlocking(blocking), gridgraph.WithLogger(s.logger))
	if err != nil {
		fail(c, "Failed to build graph", err)
		return
	}
	if err = s.replaceGraph(c, g); err != nil {
		fail(c, "Failed to save graph", err)
		return
	}

	response.Success(c, gin.H{
		"graph":      snapshot.FromGraph(g),
		"components": len(gridgraph.Components(g)),
	})
}

// putGraph handles PUT /api/v1/graph
func (s *Server) putGraph(c *gin.Context) {
	var doc snapshot.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, "Invalid graph document", err)
		return
	}
	g, err := doc.Graph()
	if err != nil {
		fail(c, "Invalid graph document", err)
		return
	}
	if err = s.replaceGraph(c, g); err != nil {
		fail(c, "Failed to save graph", err)
		return
	}

	response.Success(c, snapshot.FromGraph(g))
}

// replaceGraph persists g and publishes it, dropping every derived state.
func (s *Server) replaceGraph(c *gin.Context, g *core.Graph) error {
	if err := s.Store.SaveGraph(c.Request.Context(), g); err != nil {
		return err
	}
	st := s.Workspace.SetGraph(g)
	s.Tracker.SetRoute(st.Version, nil)
	s.Tracker.Forget()
	s.Labels.Invalidate()
	s.logger.Info("graph replaced", "version", st.Version, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return nil
}

// putStart handles PUT /api/v1/start
func (s *Server) putStart(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	cell, err := req.resolve(s.Workspace.Current().Graph)
	if err != nil {
		fail(c, "Invalid start cell", err)
		return
	}
	st := s.Workspace.SetStart(cell)
	s.Tracker.SetRoute(st.Version, nil)
	s.Tracker.Forget()

	response.Success(c, gin.H{"start": nodeOf(cell)})
}

// getPath handles GET /api/v1/graph/path?from=i_j&to=i_j[&max=d]
func (s *Server) getPath(c *gin.Context) {
	g := s.Workspace.Current().Graph
	if g == nil {
		fail(c, "No graph", workspace.ErrNoGraph)
		return
	}
	from, err := core.ParseCellID(c.Query("from"))
	if err != nil {
		fail(c, "Invalid from", err)
		return
	}
	to, err := core.ParseCellID(c.Query("to"))
	if err != nil {
		fail(c, "Invalid to", err)
		return
	}
	var opts []dijkstra.Option
	if raw := c.Query("max"); raw != "" {
		d, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			response.BadRequest(c, "max must be a number", perr)
			return
		}
		opts = append(opts, dijkstra.WithMaxDistance(d))
	}

	res, err := dijkstra.ShortestPaths(g, from, opts...)
	if err != nil {
		fail(c, "Invalid path query", err)
		return
	}
	path, err := res.PathTo(to)
	if err != nil {
		fail(c, "No path", err)
		return
	}

	response.Success(c, gin.H{
		"path":   ids(path),
		"length": res.Distance(to),
	})
}
