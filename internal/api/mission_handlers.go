package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/internal/store"
	"github.com/katalvlaran/flyover/internal/workspace"
	"github.com/katalvlaran/flyover/mission"
	"github.com/katalvlaran/flyover/pkg/response"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

type missionRequest struct {
	Height float64      `json:"height"`
	Axis   mission.Axis `json:"axis"`
}

// pointJSON is a local metric coordinate.
type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// missionPayload builds the runner request for the current route from the
// optional body. It writes the error response itself and reports false.
func (s *Server) missionPayload(c *gin.Context) (*workspace.State, mission.Request, bool) {
	var req missionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body", err)
			return nil, mission.Request{}, false
		}
	}

	cur := s.Workspace.Current()
	if cur.Route == nil {
		fail(c, "No route to fly", workspace.ErrNoRoute)
		return nil, mission.Request{}, false
	}
	payload, err := mission.NewRequest(*cur.Route, cur.Graph.Meta(), req.Height, req.Axis)
	if err != nil {
		fail(c, "Invalid mission", err)
		return nil, mission.Request{}, false
	}

	return cur, payload, true
}

// previewMission handles POST /api/v1/mission/preview
func (s *Server) previewMission(c *gin.Context) {
	_, payload, ok := s.missionPayload(c)
	if !ok {
		return
	}
	local := payload.LocalPoints()
	points := make([]pointJSON, len(local))
	for k, p := range local {
		points[k] = pointJSON{X: p.X, Y: p.Y}
	}

	response.Success(c, gin.H{
		"request": payload,
		"points":  points,
	})
}

// startMission handles POST /api/v1/mission/start
func (s *Server) startMission(c *gin.Context) {
	if s.Runner == nil {
		fail(c, "Mission runner unavailable", errNoRunner)
		return
	}
	cur, payload, ok := s.missionPayload(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := s.Runner.Start(ctx, payload); err != nil {
		fail(c, "Failed to start mission", err)
		return
	}
	s.Tracker.SetRoute(cur.Version, payload.Cells())

	m := store.Mission{
		ID:               uuid.NewString(),
		Waypoints:        len(payload.Route),
		RouteLength:      cur.Route.Length,
		Height:           payload.Height,
		ReturnStartIndex: payload.ReturnStartIndex,
		State:            store.MissionStarted,
		StartedAt:        time.Now(),
	}
	// The runner already accepted the mission; history is best effort.
	if err := s.Store.RecordMission(ctx, m); err != nil {
		s.logger.Error("mission not recorded", "id", m.ID, "error", err)
	}
	s.logger.Info("mission started", "id", m.ID, "waypoints", m.Waypoints, "height", m.Height)

	response.Success(c, gin.H{
		"mission": m,
		"request": payload,
	})
}

// landMission handles POST /api/v1/mission/land
func (s *Server) landMission(c *gin.Context) {
	if s.Runner == nil {
		fail(c, "Mission runner unavailable", errNoRunner)
		return
	}
	ctx := c.Request.Context()
	if err := s.Runner.Land(ctx); err != nil {
		fail(c, "Failed to land", err)
		return
	}
	n, err := s.Store.SetMissionState(ctx, store.MissionStarted, store.MissionLanded)
	if err != nil {
		s.logger.Error("mission state not updated", "error", err)
	}

	response.Success(c, gin.H{"landed": n})
}

// positionJSON is the wire form of the tracked vehicle position.
type positionJSON struct {
	Active    bool       `json:"mission_active"`
	Available bool       `json:"available"`
	Index     int        `json:"index"`
	Node      *nodeLabel `json:"node"`
	Seq       uint64     `json:"seq"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type nodeLabel struct {
	ID    string `json:"id"`
	I     int    `json:"i"`
	J     int    `json:"j"`
	Label string `json:"label,omitempty"`
}

// getPosition handles GET /api/v1/mission/position
func (s *Server) getPosition(c *gin.Context) {
	if s.Poller == nil {
		fail(c, "Mission runner unavailable", errNoRunner)
		return
	}
	pos := s.Poller.Position()
	out := positionJSON{
		Active:    pos.Active,
		Available: pos.Available,
		Index:     pos.Index,
		Seq:       pos.Seq,
	}
	if !pos.UpdatedAt.IsZero() {
		out.UpdatedAt = &pos.UpdatedAt
	}
	if pos.HasCell {
		out.Node = s.labelled(c, pos.Cell)
	}

	response.Success(c, out)
}

// labelled returns c with its annotation; a failing label source only loses the label.
func (s *Server) labelled(c *gin.Context, cell core.CellID) *nodeLabel {
	n := &nodeLabel{ID: cell.String(), I: cell.I, J: cell.J}
	label, _, err := s.Labels.Get(c.Request.Context(), cell)
	if err != nil {
		s.logger.Warn("label lookup failed", "cell", cell.String(), "error", err)
		return n
	}
	n.Label = label

	return n
}

// getMissions handles GET /api/v1/mission/history
func (s *Server) getMissions(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			response.BadRequest(c, "limit must be a positive integer", errors.New("api: bad limit"))
			return
		}
		limit = min(v, maxHistoryLimit)
	}
	ms, err := s.Store.Missions(c.Request.Context(), limit)
	if err != nil {
		fail(c, "Failed to load missions", err)
		return
	}
	if ms == nil {
		ms = []store.Mission{}
	}

	response.Success(c, ms)
}
