package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appidentity "github.com/storekit/backend/internal/application/identity"
	"github.com/storekit/backend/internal/domain/shared"
)

type stubResolver struct {
	tenants map[string]uuid.UUID
}

func (r *stubResolver) ResolveBySubdomain(_ context.Context, subdomain string) (*appidentity.TenantResponse, error) {
	if id, ok := r.tenants[subdomain]; ok {
		return &appidentity.TenantResponse{ID: id, Subdomain: subdomain, Active: true}, nil
	}
	return nil, shared.ErrNotFound
}

func tenantTestRouter(resolver TenantResolver, baseDomain string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ResolveTenant(resolver, baseDomain))
	router.GET("/ping", func(c *gin.Context) {
		id, _ := GetTenantID(c)
		c.JSON(http.StatusOK, gin.H{"tenant_id": id.String()})
	})
	return router
}

func TestResolveTenant_BySubdomain(t *testing.T) {
	tenantID := uuid.New()
	resolver := &stubResolver{tenants: map[string]uuid.UUID{"acme": tenantID}}
	router := tenantTestRouter(resolver, "storekit.test")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "acme.storekit.test"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tenantID.String())
	assert.Equal(t, tenantID.String(), w.Header().Get(TenantHeaderKey))
}

func TestResolveTenant_SubdomainWithPort(t *testing.T) {
	tenantID := uuid.New()
	resolver := &stubResolver{tenants: map[string]uuid.UUID{"acme": tenantID}}
	router := tenantTestRouter(resolver, "storekit.test")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "acme.storekit.test:8080"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveTenant_UnknownSubdomain(t *testing.T) {
	resolver := &stubResolver{tenants: map[string]uuid.UUID{}}
	router := tenantTestRouter(resolver, "storekit.test")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "ghost.storekit.test"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveTenant_HeaderFallback(t *testing.T) {
	tenantID := uuid.New()
	resolver := &stubResolver{tenants: map[string]uuid.UUID{}}
	router := tenantTestRouter(resolver, "storekit.test")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "storekit.test"
	req.Header.Set(TenantHeaderKey, tenantID.String())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tenantID.String())
}

func TestResolveTenant_InvalidHeader(t *testing.T) {
	resolver := &stubResolver{tenants: map[string]uuid.UUID{}}
	router := tenantTestRouter(resolver, "storekit.test")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "storekit.test"
	req.Header.Set(TenantHeaderKey, "not-a-uuid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveTenant_NoTenant(t *testing.T) {
	resolver := &stubResolver{tenants: map[string]uuid.UUID{}}
	router := tenantTestRouter(resolver, "storekit.test")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "storekit.test"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractSubdomain(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"acme.storekit.test", "acme"},
		{"acme.storekit.test:8080", "acme"},
		{"storekit.test", ""},
		{"a.b.storekit.test", ""},
		{"elsewhere.example.com", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractSubdomain(tt.host, "storekit.test"), tt.host)
	}
}
