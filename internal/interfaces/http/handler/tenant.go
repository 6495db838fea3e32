package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityapp "github.com/storekit/backend/internal/application/identity"
	"github.com/storekit/backend/internal/interfaces/http/dto"
)

// TenantHandler handles store registration and lifecycle endpoints
type TenantHandler struct {
	BaseHandler
	tenants *identityapp.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenants *identityapp.TenantService) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

// Create handles POST /tenants
func (h *TenantHandler) Create(c *gin.Context) {
	var req identityapp.CreateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenants.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tenant)
}

// Update handles PUT /tenants/:id
func (h *TenantHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req identityapp.UpdateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenants.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// Get handles GET /tenants/:id
func (h *TenantHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	tenant, err := h.tenants.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// List handles GET /tenants
func (h *TenantHandler) List(c *gin.Context) {
	req, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	page, err := h.tenants.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// Activate handles POST /tenants/:id/activate
func (h *TenantHandler) Activate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	tenant, err := h.tenants.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// Deactivate handles POST /tenants/:id/deactivate
func (h *TenantHandler) Deactivate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	tenant, err := h.tenants.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}
