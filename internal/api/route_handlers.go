package api

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/coverage"
	"github.com/katalvlaran/flyover/internal/workspace"
	"github.com/katalvlaran/flyover/pkg/response"
	"github.com/katalvlaran/flyover/snapshot"
)

type planRequest struct {
	Start *startRequest `json:"start"`
}

// routeJSON is the wire form of a planned route.
type routeJSON struct {
	Route            []string        `json:"route"`
	Nodes            []snapshot.Node `json:"nodes"`
	Length           float64         `json:"length"`
	ReturnStartIndex *int            `json:"return_start_index"`
	Unvisited        []string        `json:"unvisited"`
	Complete         bool            `json:"complete"`
}

func ids(cells []core.CellID) []string {
	out := make([]string, len(cells))
	for k, c := range cells {
		out[k] = c.String()
	}

	return out
}

func newRouteJSON(r coverage.Route) routeJSON {
	out := routeJSON{
		Route:            ids(r.Nodes),
		Nodes:            make([]snapshot.Node, len(r.Nodes)),
		Length:           r.Length,
		ReturnStartIndex: r.ReturnStart,
		Unvisited:        ids(r.Unvisited),
		Complete:         r.Complete(),
	}
	for k, c := range r.Nodes {
		out.Nodes[k] = nodeOf(c)
	}

	return out
}

// planRoute handles POST /api/v1/route
func (s *Server) planRoute(c *gin.Context) {
	var req planRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body", err)
			return
		}
	}

	var start *core.CellID
	if req.Start != nil {
		cell, err := req.Start.resolve(s.Workspace.Current().Graph)
		if err != nil {
			fail(c, "Invalid start cell", err)
			return
		}
		start = &cell
	}

	var (
		st  *workspace.State
		err error
	)
	switch here, tracked := s.Tracker.Located(); {
	case start != nil:
		if st, err = s.Workspace.Plan(start); err == nil {
			s.Tracker.Forget()
		}
	case tracked:
		// The vehicle's last seen cell wins over the stored start.
		st, err = s.Workspace.PlanFrom(here)
	default:
		st, err = s.Workspace.Plan(nil)
	}
	if err != nil {
		fail(c, "Failed to plan route", err)
		return
	}
	s.Tracker.SetRoute(st.Version, st.Route.Nodes)

	response.Success(c, newRouteJSON(*st.Route))
}

// getRoute handles GET /api/v1/route
func (s *Server) getRoute(c *gin.Context) {
	route, err := s.Workspace.Route()
	if err != nil {
		fail(c, "No route", err)
		return
	}

	response.Success(c, newRouteJSON(route))
}
