package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/pkg/response"
)

func serve(t *testing.T, h gin.HandlerFunc) (int, response.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return w.Code, body
}

func TestSuccess(t *testing.T) {
	code, body := serve(t, func(c *gin.Context) { response.Success(c, gin.H{"n": 3}) })
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "success", body.Message)
	assert.Equal(t, map[string]any{"n": float64(3)}, body.Data)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		h    gin.HandlerFunc
		code int
		msg  string
	}{
		{"BadRequest", func(c *gin.Context) { response.BadRequest(c, "bad body", errors.New("eof")) }, 400, "bad body: eof"},
		{"NotFound", func(c *gin.Context) { response.NotFound(c, "no graph") }, 404, "no graph"},
		{"Conflict", func(c *gin.Context) { response.Conflict(c, "stale", nil) }, 409, "stale"},
		{"Internal", func(c *gin.Context) { response.InternalError(c, "db") }, 500, "db"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := serve(t, tc.h)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.msg, body.Message)
			assert.Nil(t, body.Data)
		})
	}
}
