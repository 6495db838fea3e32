package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	appidentity "github.com/storekit/backend/internal/application/identity"
	"github.com/storekit/backend/internal/domain/identity"
)

func permissionTestRouter(role string, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if role != "" {
		router.Use(func(c *gin.Context) {
			c.Set(ClaimsKey, &appidentity.TokenClaims{
				UserID:   uuid.New(),
				TenantID: uuid.New(),
				Role:     role,
			})
			c.Next()
		})
	}
	router.Use(RequirePermission(permission))
	router.GET("/guarded", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		permission string
		status     int
	}{
		{"owner can manage tenant", "owner", identity.PermissionManageTenant, http.StatusOK},
		{"manager cannot manage tenant", "manager", identity.PermissionManageTenant, http.StatusForbidden},
		{"manager can manage partners", "manager", identity.PermissionManagePartners, http.StatusOK},
		{"cashier can create sales", "cashier", identity.PermissionCreateSales, http.StatusOK},
		{"cashier cannot manage inventory", "cashier", identity.PermissionManageInventory, http.StatusForbidden},
		{"unknown role denied", "intern", identity.PermissionCreateSales, http.StatusForbidden},
		{"no claims denied", "", identity.PermissionCreateSales, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := permissionTestRouter(tt.role, tt.permission)
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates an id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})

	t.Run("honors caller-supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "trace-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "trace-123", w.Body.String())
	})
}
