package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/jwt"
	"bookstore-api/pkg/logger"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRoles  = "roles"
	ContextClaims = "claims"
)

// AuthMiddleware requires a valid "Bearer <token>" Authorization header.
func AuthMiddleware(jwtManager *jwt.Manager, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify
		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Rejected bearer token", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Subject)
		c.Set(ContextRoles, claims.Roles)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextClaims)
		claims, ok := value.(*jwt.Claims)
		if !exists || !ok || !claims.HasRole(role) {
			response.Forbidden(c, "Access denied: "+role+" role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
