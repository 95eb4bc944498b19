package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/internal/api"
	"github.com/katalvlaran/flyover/internal/workspace"
	"github.com/katalvlaran/flyover/mission"
)

func token(t *testing.T, secret string, method jwt.SigningMethod, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)

	return s
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := api.New(api.Deps{
		Workspace:  workspace.New(workspace.Options{}),
		Labels:     mission.NewAnnotationCache(nil),
		AuthSecret: []byte("s3cret"),
		Logger:     quietLogger(),
	})
	router := srv.Router()
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name   string
		method string
		auth   string
		code   int
	}{
		{"read is open", http.MethodGet, "", http.StatusOK},
		{"write without token", http.MethodPut, "", http.StatusUnauthorized},
		{"wrong scheme", http.MethodPut, "Basic abc", http.StatusUnauthorized},
		{"wrong secret", http.MethodPut, "Bearer " + token(t, "other", jwt.SigningMethodHS256, future), http.StatusUnauthorized},
		{"expired", http.MethodPut, "Bearer " + token(t, "s3cret", jwt.SigningMethodHS256, time.Now().Add(-time.Minute)), http.StatusUnauthorized},
		{"wrong algorithm", http.MethodPut, "Bearer " + token(t, "s3cret", jwt.SigningMethodHS512, future), http.StatusUnauthorized},
		// The token passes; the handler then rejects the body.
		{"valid", http.MethodPut, "Bearer " + token(t, "s3cret", jwt.SigningMethodHS256, future), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/api/v1/start", strings.NewReader(`{}`))
			if tc.method == http.MethodGet {
				req = httptest.NewRequest(tc.method, "/api/v1/graph", nil)
			}
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
		})
	}
}
