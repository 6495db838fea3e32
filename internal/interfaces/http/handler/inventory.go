package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/storekit/backend/internal/application/inventory"
)

// InventoryHandler handles stock movement and stock query endpoints
type InventoryHandler struct {
	BaseHandler
	inventory *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventory *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// RecordMovement handles POST /inventory/movements
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	var req inventoryapp.RecordMovementRequest
	if !h.bindJSON(c, &req) {
		return
	}

	stock, err := h.inventory.RecordMovement(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, stock)
}

// GetStock handles GET /inventory/products/:id
func (h *InventoryHandler) GetStock(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	productID, ok := h.pathID(c)
	if !ok {
		return
	}

	summary, err := h.inventory.GetStockSummary(c.Request.Context(), tenantID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// ListMovements handles GET /inventory/products/:id/movements
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	productID, ok := h.pathID(c)
	if !ok {
		return
	}
	req, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	movements, err := h.inventory.ListMovements(c.Request.Context(), tenantID, productID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// ListLowStock handles GET /inventory/low-stock
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	levels, err := h.inventory.ListLowStock(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, levels)
}
