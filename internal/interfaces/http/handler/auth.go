package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	identityapp "github.com/storekit/backend/internal/application/identity"
	"github.com/storekit/backend/internal/interfaces/http/dto"
	"github.com/storekit/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles login, logout, and user registration endpoints
type AuthHandler struct {
	BaseHandler
	auth *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	var req identityapp.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Logout handles POST /auth/logout. The token to revoke is the one the
// request authenticated with.
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader(middleware.AuthHeaderKey)
	token := strings.TrimPrefix(header, middleware.BearerPrefix)
	if token == "" || token == header {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "No token presented")
		return
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Register handles POST /auth/users
func (h *AuthHandler) Register(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	var req identityapp.RegisterUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
		return
	}
	h.Success(c, gin.H{
		"user_id":   claims.UserID,
		"tenant_id": claims.TenantID,
		"email":     claims.Email,
		"role":      claims.Role,
	})
}
