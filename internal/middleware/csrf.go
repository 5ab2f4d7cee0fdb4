package middleware

import (
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/security"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CSRFMiddleware requires a valid X-CSRF-Token header on mutating
// requests. Tokens are issued by GET /api/csrf-token and validated
// against the configured secret in constant time.
func CSRFMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		token := c.GetHeader("X-CSRF-Token")
		if token == "" || !security.ValidateCSRFToken(cfg.CSRF.Secret, token) {
			util.Error(c, http.StatusForbidden, "Invalid CSRF token")
			c.Abort()
			return
		}
		c.Next()
	}
}
