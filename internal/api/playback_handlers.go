package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/flyover/mission"
	"github.com/katalvlaran/flyover/pkg/response"
)

// getPlayback handles GET /api/v1/playback
func (s *Server) getPlayback(c *gin.Context) {
	response.Success(c, gin.H{
		"active":   s.Playback.Active(),
		"position": s.simulatedPosition(),
	})
}

// startPlayback handles POST /api/v1/playback/start
func (s *Server) startPlayback(c *gin.Context) {
	route, err := s.Workspace.Route()
	if err != nil {
		fail(c, "No route to play", err)
		return
	}
	if s.Playback.Active() {
		fail(c, "Failed to start playback", mission.ErrPlaybackActive)
		return
	}
	s.resetSimulated()
	// Playback outlives the request.
	if _, err = s.Playback.Start(context.Background(), route.Nodes, s.setSimulated); err != nil {
		fail(c, "Failed to start playback", err)
		return
	}

	response.Success(c, gin.H{"active": true, "waypoints": len(route.Nodes)})
}

// stopPlayback handles POST /api/v1/playback/stop
func (s *Server) stopPlayback(c *gin.Context) {
	s.Playback.Stop()

	response.Success(c, gin.H{"active": false})
}
