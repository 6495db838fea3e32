package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// ProductInventory is a read-model aggregate over a product's stock and
// its movement history. Instances are immutable snapshots: ApplyMovement
// returns a new aggregate rather than mutating the receiver.
type ProductInventory struct {
	TenantID     uuid.UUID
	ProductID    uuid.UUID
	CurrentStock int
	Movements    []Movement
	LastUpdated  time.Time

	events []shared.DomainEvent
}

// NewProductInventory reconstructs an inventory aggregate from a
// persisted snapshot. Movements are expected ordered by creation time.
func NewProductInventory(tenantID, productID uuid.UUID, currentStock int, movements []Movement, lastUpdated time.Time) (*ProductInventory, error) {
	if currentStock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Current stock cannot be negative")
	}
	return &ProductInventory{
		TenantID:     tenantID,
		ProductID:    productID,
		CurrentStock: currentStock,
		Movements:    movements,
		LastUpdated:  lastUpdated,
	}, nil
}

// IsInStock reports whether any stock is available
func (pi *ProductInventory) IsInStock() bool {
	return pi.CurrentStock > 0
}

// HasLowStock reports whether stock is at or below the given threshold
func (pi *ProductInventory) HasLowStock(threshold int) bool {
	return pi.CurrentStock <= threshold
}

// HasSufficientStock reports whether the required quantity can be served
func (pi *ProductInventory) HasSufficientStock(required int) bool {
	return pi.CurrentStock >= required
}

// StockValue returns the monetary value of current stock at the given
// unit price
func (pi *ProductInventory) StockValue(unitPrice valueobject.Money) (valueobject.Money, error) {
	return unitPrice.MultiplyByInt(int64(pi.CurrentStock))
}

// RecentMovements returns movements created within the last `days`
// days, boundary inclusive
func (pi *ProductInventory) RecentMovements(days int) []Movement {
	cutoff := time.Now().AddDate(0, 0, -days)
	recent := make([]Movement, 0, len(pi.Movements))
	for _, m := range pi.Movements {
		if !m.CreatedAt.Before(cutoff) {
			recent = append(recent, m)
		}
	}
	return recent
}

// TotalIncoming sums the quantities of all incoming movements
func (pi *ProductInventory) TotalIncoming() int {
	total := 0
	for _, m := range pi.Movements {
		if m.Type == MovementIn {
			total += m.Quantity
		}
	}
	return total
}

// TotalOutgoing sums the quantities of all outgoing movements
func (pi *ProductInventory) TotalOutgoing() int {
	total := 0
	for _, m := range pi.Movements {
		if m.Type == MovementOut {
			total += m.Quantity
		}
	}
	return total
}

// ProjectedStock returns the stock level after applying a hypothetical
// signed delta, without mutating the aggregate
func (pi *ProductInventory) ProjectedStock(delta int) int {
	return pi.CurrentStock + delta
}

// ApplyMovement returns a new aggregate with the movement applied.
// Outgoing movements that would drive stock negative are rejected.
func (pi *ProductInventory) ApplyMovement(movement Movement) (*ProductInventory, error) {
	newStock := pi.CurrentStock + movement.Delta()
	if newStock < 0 {
		return nil, shared.ErrInsufficientStock
	}

	movements := make([]Movement, len(pi.Movements), len(pi.Movements)+1)
	copy(movements, pi.Movements)
	movements = append(movements, movement)

	next := &ProductInventory{
		TenantID:     pi.TenantID,
		ProductID:    pi.ProductID,
		CurrentStock: newStock,
		Movements:    movements,
		LastUpdated:  time.Now(),
	}

	if movement.Type == MovementIn {
		next.events = append(next.events, NewStockIncreasedEvent(next, movement))
	} else {
		next.events = append(next.events, NewStockDecreasedEvent(next, movement))
	}

	return next, nil
}

// GetDomainEvents returns pending domain events recorded on this snapshot
func (pi *ProductInventory) GetDomainEvents() []shared.DomainEvent {
	return pi.events
}

// ClearDomainEvents clears pending domain events
func (pi *ProductInventory) ClearDomainEvents() {
	pi.events = nil
}
