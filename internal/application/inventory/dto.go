package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/inventory"
)

// RecordMovementRequest is the input for recording a stock movement
type RecordMovementRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
	Reason    string    `json:"reason"`
	Reference string    `json:"reference"`
}

// MovementResponse is the API representation of a movement
type MovementResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToMovementResponse converts a domain movement to its API representation
func ToMovementResponse(m inventory.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
	}
}

// StockResponse reports a product's current stock position
type StockResponse struct {
	ProductID    uuid.UUID `json:"product_id"`
	CurrentStock int       `json:"current_stock"`
	InStock      bool      `json:"in_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockSummaryResponse is the detailed view of one product's inventory
type StockSummaryResponse struct {
	ProductID       uuid.UUID          `json:"product_id"`
	CurrentStock    int                `json:"current_stock"`
	InStock         bool               `json:"in_stock"`
	TotalIncoming   int                `json:"total_incoming"`
	TotalOutgoing   int                `json:"total_outgoing"`
	RecentMovements []MovementResponse `json:"recent_movements"`
	LastUpdated     time.Time          `json:"last_updated"`
}
