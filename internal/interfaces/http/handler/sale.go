package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	salesapp "github.com/storekit/backend/internal/application/sales"
	"github.com/storekit/backend/internal/interfaces/http/dto"
	"github.com/storekit/backend/internal/interfaces/http/middleware"
)

// SaleHandler handles point-of-sale endpoints
type SaleHandler struct {
	BaseHandler
	sales *salesapp.SalesService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(sales *salesapp.SalesService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// QuoteRequest is the body for POST /sales/quote
type QuoteRequest struct {
	Items   []salesapp.SaleItemInput `json:"items"`
	TaxRate *decimal.Decimal         `json:"tax_rate"`
}

// QuoteResponse carries the validation outcome and, when valid, the
// computed totals
type QuoteResponse struct {
	Validation salesapp.ValidationResult `json:"validation"`
	Totals     *salesapp.SaleTotals      `json:"totals,omitempty"`
}

// CancelSaleRequest is the body for POST /sales/:id/cancel
type CancelSaleRequest struct {
	Reason string `json:"reason"`
}

// Create handles POST /sales
func (h *SaleHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	cashierID, ok := middleware.GetUserID(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
		return
	}
	var req salesapp.CreateSaleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	sale, err := h.sales.Create(c.Request.Context(), tenantID, cashierID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// Quote handles POST /sales/quote. It validates the requested lines and
// prices them without touching stock or persisting anything.
func (h *SaleHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if !h.bindJSON(c, &req) {
		return
	}

	validation := salesapp.ValidateSale(req.Items)
	resp := QuoteResponse{Validation: validation}
	if validation.IsValid {
		taxRate := salesapp.DefaultTaxRate
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}
		totals := salesapp.CalculateSaleTotal(req.Items, taxRate)
		resp.Totals = &totals
	}
	h.Success(c, resp)
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	sale, err := h.sales.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// List handles GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	req, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	page, err := h.sales.List(c.Request.Context(), tenantID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// Cancel handles POST /sales/:id/cancel
func (h *SaleHandler) Cancel(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req CancelSaleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.sales.Cancel(c.Request.Context(), tenantID, id, req.Reason); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
