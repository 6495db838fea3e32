package sales

import (
	"github.com/storekit/backend/internal/domain/shared"
)

// Aggregate type constant for Sale
const AggregateTypeSale = "Sale"

// Event type constants for Sale
const (
	EventTypeSaleCreated     = "SaleCreated"
	EventTypeSaleCompleted   = "SaleCompleted"
	EventTypeSaleCancelled   = "SaleCancelled"
	EventTypePaymentReceived = "PaymentReceived"
)

// SaleCreatedEvent is published when a draft sale is created
type SaleCreatedEvent struct {
	shared.BaseDomainEvent
	Number    string `json:"number"`
	ItemCount int    `json:"item_count"`
	Total     string `json:"total"`
}

// NewSaleCreatedEvent creates a new SaleCreatedEvent
func NewSaleCreatedEvent(sale *Sale) *SaleCreatedEvent {
	return &SaleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCreated, AggregateTypeSale, sale.ID, sale.TenantID),
		Number:          sale.Number,
		ItemCount:       sale.ItemCount(),
		Total:           sale.Total.String(),
	}
}

// SaleCompletedEvent is published when a sale transitions to completed
type SaleCompletedEvent struct {
	shared.BaseDomainEvent
	Number string `json:"number"`
	Total  string `json:"total"`
}

// NewSaleCompletedEvent creates a new SaleCompletedEvent
func NewSaleCompletedEvent(sale *Sale) *SaleCompletedEvent {
	return &SaleCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCompleted, AggregateTypeSale, sale.ID, sale.TenantID),
		Number:          sale.Number,
		Total:           sale.Total.String(),
	}
}

// SaleCancelledEvent is published when a draft sale is voided
type SaleCancelledEvent struct {
	shared.BaseDomainEvent
	Number string `json:"number"`
	Reason string `json:"reason"`
}

// NewSaleCancelledEvent creates a new SaleCancelledEvent
func NewSaleCancelledEvent(sale *Sale, reason string) *SaleCancelledEvent {
	return &SaleCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCancelled, AggregateTypeSale, sale.ID, sale.TenantID),
		Number:          sale.Number,
		Reason:          reason,
	}
}

// PaymentReceivedEvent is published alongside SaleCompleted with the
// payment details
type PaymentReceivedEvent struct {
	shared.BaseDomainEvent
	Number string `json:"number"`
	Method string `json:"method"`
	Amount string `json:"amount"`
}

// NewPaymentReceivedEvent creates a new PaymentReceivedEvent
func NewPaymentReceivedEvent(sale *Sale) *PaymentReceivedEvent {
	return &PaymentReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentReceived, AggregateTypeSale, sale.ID, sale.TenantID),
		Number:          sale.Number,
		Method:          string(sale.Payment),
		Amount:          sale.Total.String(),
	}
}
