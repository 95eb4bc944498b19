// Package api exposes the planner over HTTP with gin.
package api

import (
	"context"
	"log/slog"
	"sync"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/internal/store"
	"github.com/katalvlaran/flyover/internal/workspace"
	"github.com/katalvlaran/flyover/mission"
	"github.com/katalvlaran/flyover/snapshot"
)

// Store is the persistence the API writes through.
type Store interface {
	SaveGraph(ctx context.Context, g *core.Graph) error
	SetLabel(ctx context.Context, c core.CellID, label string) error
	RecordMission(ctx context.Context, m store.Mission) error
	SetMissionState(ctx context.Context, from, to string) (int64, error)
	Missions(ctx context.Context, limit int) ([]store.Mission, error)
}

// Deps wires the server to its collaborators. Runner and Poller may be nil
// when no flight controller is configured.
type Deps struct {
	Workspace        *workspace.Workspace
	Store            Store
	Labels           *mission.AnnotationCache
	Tracker          *mission.Tracker
	Runner           mission.Runner
	Poller           *mission.Poller
	Playback         *mission.Playback
	ObstacleBlocking bool
	// AuthSecret enables bearer-token checks on writes when non-empty.
	AuthSecret []byte
	Logger     *slog.Logger
}

// Server holds the handlers' shared state.
type Server struct {
	Deps
	logger *slog.Logger

	simMu  sync.Mutex
	simPos *simulated
}

// simulated is the latest playback step.
type simulated struct {
	Index int           `json:"index"`
	Node  snapshot.Node `json:"node"`
}

// New returns a Server over deps.
func New(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if deps.Tracker == nil {
		deps.Tracker = mission.NewTracker()
	}
	if deps.Playback == nil {
		deps.Playback = mission.NewPlayback(0)
	}

	return &Server{Deps: deps, logger: logger}
}

// setSimulated publishes a playback step; the step is also where the
// vehicle is considered to be.
func (s *Server) setSimulated(idx int, c core.CellID) {
	s.simMu.Lock()
	s.simPos = &simulated{Index: idx, Node: nodeOf(c)}
	s.simMu.Unlock()
	s.Tracker.Locate(c)
}

func (s *Server) resetSimulated() {
	s.simMu.Lock()
	s.simPos = nil
	s.simMu.Unlock()
}

func (s *Server) simulatedPosition() *simulated {
	s.simMu.Lock()
	defer s.simMu.Unlock()
	if s.simPos == nil {
		return nil
	}
	cp := *s.simPos

	return &cp
}
