package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appidentity "github.com/storekit/backend/internal/application/identity"
	"github.com/storekit/backend/internal/interfaces/http/dto"
)

// TenantIDKey is the gin context key for the resolved tenant ID
const TenantIDKey = "tenant_id"

// TenantHeaderKey is the fallback header for tenant selection when no
// subdomain is present
const TenantHeaderKey = "X-Tenant-ID"

// TenantResolver looks up the active tenant behind a subdomain.
// TenantService satisfies this.
type TenantResolver interface {
	ResolveBySubdomain(ctx context.Context, subdomain string) (*appidentity.TenantResponse, error)
}

// ResolveTenant returns a middleware that resolves the request's tenant.
// The subdomain of the request host (relative to baseDomain) wins; the
// X-Tenant-ID header is the fallback for clients addressing the API
// directly. Requests without a resolvable tenant are rejected.
func ResolveTenant(resolver TenantResolver, baseDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if subdomain := extractSubdomain(c.Request.Host, baseDomain); subdomain != "" {
			tenant, err := resolver.ResolveBySubdomain(c.Request.Context(), subdomain)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusNotFound,
					dto.NewErrorResponse(dto.ErrCodeNotFound, "Unknown store"))
				return
			}
			setTenant(c, tenant.ID)
			return
		}

		if header := c.GetHeader(TenantHeaderKey); header != "" {
			tenantID, err := uuid.Parse(header)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest,
					dto.NewErrorResponse(dto.ErrCodeBadRequest, "Invalid tenant ID"))
				return
			}
			setTenant(c, tenantID)
			return
		}

		c.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrCodeBadRequest, "No store identified by subdomain or X-Tenant-ID header"))
	}
}

func setTenant(c *gin.Context, tenantID uuid.UUID) {
	c.Set(TenantIDKey, tenantID)
	c.Writer.Header().Set(TenantHeaderKey, tenantID.String())
	c.Next()
}

// extractSubdomain returns the subdomain of host relative to baseDomain,
// or "" when the host is the base domain itself or unrelated to it
func extractSubdomain(host, baseDomain string) string {
	if baseDomain == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if !strings.HasSuffix(host, "."+baseDomain) {
		return ""
	}
	prefix := strings.TrimSuffix(host, "."+baseDomain)
	// Nested subdomains are not tenant names
	if prefix == "" || strings.Contains(prefix, ".") {
		return ""
	}
	return prefix
}

// GetTenantID retrieves the resolved tenant ID from the gin context
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(TenantIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}
