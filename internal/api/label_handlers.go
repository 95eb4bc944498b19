package api

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/pkg/response"
)

type labelRequest struct {
	Label string `json:"label"`
}

// getLabels handles GET /api/v1/nodes/labels
func (s *Server) getLabels(c *gin.Context) {
	all, err := s.Labels.All(c.Request.Context())
	if err != nil {
		fail(c, "Failed to load labels", err)
		return
	}
	out := make(map[string]string, len(all))
	for cell, label := range all {
		out[cell.String()] = label
	}

	response.Success(c, out)
}

// putLabel handles PUT /api/v1/nodes/:id/label. An empty label removes it.
func (s *Server) putLabel(c *gin.Context) {
	cell, err := core.ParseCellID(c.Param("id"))
	if err != nil {
		fail(c, "Invalid node id", err)
		return
	}
	var req labelRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	if err = s.Store.SetLabel(ctx, cell, req.Label); err != nil {
		fail(c, "Failed to save label", err)
		return
	}
	if err = s.Labels.Refresh(ctx); err != nil {
		s.logger.Warn("label refresh failed", "error", err)
	}

	response.Success(c, s.labelled(c, cell))
}
