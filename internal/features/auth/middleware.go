package auth

import (
	"strings"

	"github.com/cyberportal/api/internal/config"
	"github.com/cyberportal/api/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// AdminGuard protects the transition endpoints with a bearer token. Unless
// admin auth is fully configured (secret and password both set, so login can
// mint tokens) the guard passes everything through, matching the portal's
// original open deployment.
func AdminGuard(cfg *config.Config) gin.HandlerFunc {
	if cfg.AdminJWTSecret == "" || cfg.AdminPassword == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and a raw token
		fields := strings.Fields(authHeader)
		tokenString := authHeader
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		}

		if err := ValidateToken(tokenString, cfg); err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Next()
	}
}
