package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
)

// InventoryRepository defines the interface for inventory persistence.
// The stored state is the stock level plus the movement log; the
// aggregate is reconstructed from both on load.
type InventoryRepository interface {
	// FindByProduct loads the inventory aggregate for a product,
	// including its movement history
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*ProductInventory, error)

	// SaveMovement appends a movement and updates the stock level in
	// one transaction
	SaveMovement(ctx context.Context, movement Movement, newStock int) error

	// FindMovements lists movements for a product
	FindMovements(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]Movement, error)

	// FindLowStock lists product IDs whose stock is at or below each
	// product's configured threshold
	FindLowStock(ctx context.Context, tenantID uuid.UUID) ([]StockLevel, error)

	// FindStockLevels lists the current stock for every product in a tenant
	FindStockLevels(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]StockLevel, error)
}

// StockLevel is the flat per-product stock row used by listings
type StockLevel struct {
	ProductID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CurrentStock int       `gorm:"not null;default:0"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StockLevel) TableName() string {
	return "stock_levels"
}
