package inventory

import (
	"github.com/storekit/backend/internal/domain/shared"
)

// Aggregate type constant for ProductInventory
const AggregateTypeProductInventory = "ProductInventory"

// Event type constants for inventory
const (
	EventTypeStockIncreased = "StockIncreased"
	EventTypeStockDecreased = "StockDecreased"
)

// StockIncreasedEvent is published when an incoming movement is applied
type StockIncreasedEvent struct {
	shared.BaseDomainEvent
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	NewStock  int    `json:"new_stock"`
	Reason    string `json:"reason"`
}

// NewStockIncreasedEvent creates a new StockIncreasedEvent
func NewStockIncreasedEvent(pi *ProductInventory, movement Movement) *StockIncreasedEvent {
	return &StockIncreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockIncreased, AggregateTypeProductInventory, pi.ProductID, pi.TenantID),
		ProductID:       pi.ProductID.String(),
		Quantity:        movement.Quantity,
		NewStock:        pi.CurrentStock,
		Reason:          movement.Reason,
	}
}

// StockDecreasedEvent is published when an outgoing movement is applied
type StockDecreasedEvent struct {
	shared.BaseDomainEvent
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	NewStock  int    `json:"new_stock"`
	Reason    string `json:"reason"`
}

// NewStockDecreasedEvent creates a new StockDecreasedEvent
func NewStockDecreasedEvent(pi *ProductInventory, movement Movement) *StockDecreasedEvent {
	return &StockDecreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDecreased, AggregateTypeProductInventory, pi.ProductID, pi.TenantID),
		ProductID:       pi.ProductID.String(),
		Quantity:        movement.Quantity,
		NewStock:        pi.CurrentStock,
		Reason:          movement.Reason,
	}
}
