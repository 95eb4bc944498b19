package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/internal/workspace"
	"github.com/katalvlaran/flyover/mission"
	"github.com/katalvlaran/flyover/pkg/response"
)

// errNoRunner indicates a mission call without a configured flight controller.
var errNoRunner = errors.New("api: no mission runner configured")

// statusOf maps domain errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, workspace.ErrNoGraph):
		return http.StatusNotFound
	case errors.Is(err, core.ErrNotReachable),
		errors.Is(err, workspace.ErrNoRoute),
		errors.Is(err, workspace.ErrStale),
		errors.Is(err, mission.ErrPlaybackActive):
		return http.StatusConflict
	case errors.Is(err, mission.ErrRunner):
		return http.StatusBadGateway
	case errors.Is(err, errNoRunner):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with the mapped status and records it on the context.
func fail(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	switch code := statusOf(err); code {
	case http.StatusBadRequest:
		response.BadRequest(c, message, err)
	case http.StatusNotFound:
		response.NotFound(c, message, err)
	case http.StatusConflict:
		response.Conflict(c, message, err)
	case http.StatusInternalServerError:
		response.InternalError(c, message, err)
	default:
		response.Error(c, code, message, err)
	}
}
