package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/katalvlaran/flyover/pkg/response"
)

var errNoToken = errors.New("api: missing bearer token")

// authorize requires an HS256 bearer token on state-changing requests.
// Reads stay open. With no secret configured every request passes.
func (s *Server) authorize() gin.HandlerFunc {
	secret := s.AuthSecret
	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.Next()
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", errNoToken)
			return
		}
		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusUnauthorized, "Unauthorized", err)
			return
		}
		c.Set("subject", claims.Subject)
		c.Next()
	}
}
