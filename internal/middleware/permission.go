package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/pkg/policy"
	"estatecrm/internal/pkg/response"
)

// RequirePermission gates a route on the capability table. Role comes from
// the Auth middleware.
func RequirePermission(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !policy.Allowed(policy.Role(role.(string)), op) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
