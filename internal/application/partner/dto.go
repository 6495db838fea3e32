package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/partner"
)

// CreateSupplierRequest is the input for creating a supplier
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

// UpdateSupplierRequest is the input for updating a supplier
type UpdateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// SupplierResponse is the API representation of a supplier
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSupplierResponse converts a domain supplier to its API representation
func ToSupplierResponse(supplier *partner.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Email:     supplier.Email.String(),
		Phone:     supplier.Phone,
		Address:   supplier.Address,
		Notes:     supplier.Notes,
		Active:    supplier.Active,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}

// CreateCustomerRequest is the input for creating a customer
type CreateCustomerRequest struct {
	Name        string           `json:"name" binding:"required"`
	Email       string           `json:"email" binding:"required"`
	Phone       string           `json:"phone"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
}

// UpdateCustomerRequest is the input for updating a customer
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse is the API representation of a customer
type CustomerResponse struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	Email                 string          `json:"email"`
	Phone                 string          `json:"phone,omitempty"`
	Address               string          `json:"address,omitempty"`
	CreditLimit           decimal.Decimal `json:"credit_limit"`
	HasOutstandingBalance bool            `json:"has_outstanding_balance"`
	LastPaymentDate       *time.Time      `json:"last_payment_date,omitempty"`
	InGoodStanding        bool            `json:"in_good_standing"`
	Active                bool            `json:"active"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// BalanceResponse reports the computed ledger balance for a partner
type BalanceResponse struct {
	EntityID uuid.UUID       `json:"entity_id"`
	Balance  decimal.Decimal `json:"balance"`
}
