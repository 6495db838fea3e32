package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/catalog"
)

// CreateProductRequest is the input for creating a product
type CreateProductRequest struct {
	SKU               string          `json:"sku" binding:"required"`
	Name              string          `json:"name" binding:"required"`
	Description       string          `json:"description"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}

// UpdateProductRequest is the input for updating a product
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// SetPricingRequest is the input for repricing a product
type SetPricingRequest struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
}

// ProductResponse is the API representation of a product
type ProductResponse struct {
	ID                uuid.UUID       `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	Margin            decimal.Decimal `json:"margin"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to its API representation
func ToProductResponse(product *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:                product.ID,
		SKU:               product.SKU,
		Name:              product.Name,
		Description:       product.Description,
		UnitPrice:         product.UnitPrice.Amount(),
		CostPrice:         product.CostPrice.Amount(),
		Margin:            product.Margin(),
		LowStockThreshold: product.LowStockThreshold,
		Active:            product.Active,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}
