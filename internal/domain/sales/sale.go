package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusDraft     SaleStatus = "draft"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// PaymentMethod identifies how a sale was paid
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCredit   PaymentMethod = "credit"
)

// IsValid checks if the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCredit:
		return true
	}
	return false
}

// Sale is the aggregate root for one point-of-sale transaction
type Sale struct {
	shared.TenantAggregateRoot
	Number     string            `gorm:"type:varchar(30);not null;index"`
	CustomerID *uuid.UUID        `gorm:"type:uuid;index"`
	CashierID  uuid.UUID         `gorm:"type:uuid;not null"`
	Status     SaleStatus        `gorm:"type:varchar(20);not null;default:'draft'"`
	Items      []SaleLineItem    `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	Subtotal   valueobject.Money `gorm:"type:decimal(18,4);not null"`
	Tax        valueobject.Money `gorm:"type:decimal(18,4);not null"`
	Total      valueobject.Money `gorm:"type:decimal(18,4);not null"`
	Payment    PaymentMethod     `gorm:"type:varchar(20)"`
	PaidAt     *time.Time        `gorm:""`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a draft sale with pre-computed totals. Items must be
// non-empty; per-item invariants are enforced by NewSaleLineItem.
func NewSale(tenantID uuid.UUID, number string, cashierID uuid.UUID, customerID *uuid.UUID, items []SaleLineItem, subtotal, tax, total valueobject.Money) (*Sale, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_SALE_NUMBER", "Sale number cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "Sale must have at least one item")
	}

	sale := &Sale{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Number:              number,
		CustomerID:          customerID,
		CashierID:           cashierID,
		Status:              SaleStatusDraft,
		Items:               items,
		Subtotal:            subtotal,
		Tax:                 tax,
		Total:               total,
	}
	for i := range sale.Items {
		sale.Items[i].SaleID = sale.ID
	}

	sale.AddDomainEvent(NewSaleCreatedEvent(sale))

	return sale, nil
}

// Complete marks a draft sale as completed with the given payment method
func (s *Sale) Complete(payment PaymentMethod) error {
	if s.Status != SaleStatusDraft {
		return shared.NewDomainError("INVALID_SALE_STATE", "Only draft sales can be completed")
	}
	if !payment.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	now := time.Now()
	s.Status = SaleStatusCompleted
	s.Payment = payment
	s.PaidAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewSaleCompletedEvent(s))
	s.AddDomainEvent(NewPaymentReceivedEvent(s))

	return nil
}

// Cancel voids a draft sale. Completed sales cannot be cancelled.
func (s *Sale) Cancel(reason string) error {
	if s.Status != SaleStatusDraft {
		return shared.NewDomainError("INVALID_SALE_STATE", "Only draft sales can be cancelled")
	}

	s.Status = SaleStatusCancelled
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSaleCancelledEvent(s, reason))

	return nil
}

// ItemCount returns the total number of units across all line items
func (s *Sale) ItemCount() int {
	count := 0
	for i := range s.Items {
		count += s.Items[i].Quantity
	}
	return count
}
