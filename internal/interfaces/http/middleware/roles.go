package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/interfaces/http/dto"
)

// RequireRole permits continuation only when the request carries an
// authenticated identity whose role is a member of the allowed set.
// No identity is a 401; an identity outside the set is a 403.
func RequireRole(allowed identity.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		if !allowed.Contains(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Insufficient permissions"))
			return
		}

		c.Next()
	}
}
