package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appidentity "github.com/storekit/backend/internal/application/identity"
	"github.com/storekit/backend/internal/interfaces/http/dto"
)

// Auth context keys
const (
	ClaimsKey     = "auth_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// TokenVerifier checks a presented token's signature and revocation
// status. AuthService satisfies this.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*appidentity.TokenClaims, error)
}

// Auth returns a middleware that requires a valid bearer token and
// stores the verified claims in the gin context
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "Invalid or revoked token")
			return
		}

		// A token issued for one tenant must not work against another
		if resolved, ok := GetTenantID(c); ok && resolved != claims.TenantID {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Token does not belong to this store"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader(AuthHeaderKey)
	if !strings.HasPrefix(header, BearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, BearerPrefix)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

// GetClaims retrieves the verified token claims from the gin context
func GetClaims(c *gin.Context) *appidentity.TokenClaims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*appidentity.TokenClaims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID retrieves the authenticated user's ID from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	claims := GetClaims(c)
	if claims == nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
