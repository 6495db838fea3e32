package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/sales"
)

// SaleItemInput is one requested sale line, as supplied by a caller
type SaleItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleTotals is the result of a sale total computation
type SaleTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ValidationResult accumulates all violations found in a sale request
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// CreateSaleRequest is the input for creating a sale
type CreateSaleRequest struct {
	CustomerID *uuid.UUID      `json:"customer_id"`
	Items      []SaleItemInput `json:"items" binding:"required"`
	Payment    string          `json:"payment_method" binding:"required"`
	TaxRate    *decimal.Decimal `json:"tax_rate"`
}

// SaleItemResponse is one sale line in API responses
type SaleItemResponse struct {
	ProductID  uuid.UUID       `json:"product_id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SaleResponse is the API representation of a sale
type SaleResponse struct {
	ID         uuid.UUID          `json:"id"`
	Number     string             `json:"number"`
	CustomerID *uuid.UUID         `json:"customer_id,omitempty"`
	CashierID  uuid.UUID          `json:"cashier_id"`
	Status     string             `json:"status"`
	Items      []SaleItemResponse `json:"items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Tax        decimal.Decimal    `json:"tax"`
	Total      decimal.Decimal    `json:"total"`
	Payment    string             `json:"payment_method,omitempty"`
	PaidAt     *time.Time         `json:"paid_at,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// ToSaleResponse converts a domain sale to its API representation
func ToSaleResponse(sale *sales.Sale) *SaleResponse {
	items := make([]SaleItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemResponse{
			ProductID:  item.ProductID,
			SKU:        item.SKU,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.Amount(),
			TotalPrice: item.TotalPrice.Amount(),
		}
	}
	return &SaleResponse{
		ID:         sale.ID,
		Number:     sale.Number,
		CustomerID: sale.CustomerID,
		CashierID:  sale.CashierID,
		Status:     string(sale.Status),
		Items:      items,
		Subtotal:   sale.Subtotal.Amount(),
		Tax:        sale.Tax.Amount(),
		Total:      sale.Total.Amount(),
		Payment:    string(sale.Payment),
		PaidAt:     sale.PaidAt,
		CreatedAt:  sale.CreatedAt,
	}
}
