package middleware

import (
	"net/http"
	"strings"

	"sportrent/internal/pkg/jwt"
	"sportrent/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stores user_id and role on the
// context for downstream handlers.
func Auth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := j.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole ensures the authenticated user carries the given role claim.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			abortUnauthorized(c, "Role not found in token")
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
	c.Abort()
}
