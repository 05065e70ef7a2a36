package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahayognepal/charity-backend/internal/auth"
)

// RBACMiddleware checks if the user has one of the allowed roles. The role
// was loaded from the database by AuthMiddleware on this same request, so
// the check never acts on a stale role.
func RBACMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		user, ok := userVal.(auth.User)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user object"})
			return
		}

		for _, role := range allowedRoles {
			if user.Role.RoleName == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
	}
}

// RequireAdmin is shorthand for the admin-only surfaces.
func RequireAdmin() gin.HandlerFunc {
	return RBACMiddleware(auth.RoleAdmin)
}
