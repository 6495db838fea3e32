package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/interfaces/http/dto"
)

// RequirePermission returns a middleware that rejects requests whose
// authenticated role does not grant the permission. It must run after
// Auth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if !identity.RoleHasPermission(identity.Role(claims.Role), permission) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}
