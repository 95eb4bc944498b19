// Package response writes the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful response.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response. A non-nil err is appended to message.
func Error(c *gin.Context, code int, message string, err ...error) {
	if len(err) > 0 && err[0] != nil {
		message += ": " + err[0].Error()
	}
	c.AbortWithStatusJSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest sends a 400 bad request response.
func BadRequest(c *gin.Context, message string, err ...error) {
	Error(c, http.StatusBadRequest, message, err...)
}

// NotFound sends a 404 not found response.
func NotFound(c *gin.Context, message string, err ...error) {
	Error(c, http.StatusNotFound, message, err...)
}

// Conflict sends a 409 conflict response.
func Conflict(c *gin.Context, message string, err ...error) {
	Error(c, http.StatusConflict, message, err...)
}

// InternalError sends a 500 internal server error response.
func InternalError(c *gin.Context, message string, err ...error) {
	Error(c, http.StatusInternalServerError, message, err...)
}
