package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
)

// MovementType classifies a stock movement
type MovementType string

const (
	// MovementIn increases stock (purchase, return, correction up)
	MovementIn MovementType = "in"
	// MovementOut decreases stock (sale, damage, correction down)
	MovementOut MovementType = "out"
)

// IsValid checks if the movement type is a known value
func (t MovementType) IsValid() bool {
	return t == MovementIn || t == MovementOut
}

// Movement records one stock change for a product. Movements are
// immutable once recorded.
type Movement struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_movements_tenant_product,priority:1"`
	ProductID uuid.UUID    `gorm:"type:uuid;not null;index:idx_movements_tenant_product,priority:2"`
	Type      MovementType `gorm:"type:varchar(10);not null"`
	Quantity  int          `gorm:"not null"`
	Reason    string       `gorm:"type:varchar(200)"`
	Reference string       `gorm:"type:varchar(100)"`
	CreatedAt time.Time    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Movement) TableName() string {
	return "inventory_movements"
}

// NewMovement creates a stock movement. Quantity is always positive;
// the type determines the sign applied to stock.
func NewMovement(tenantID, productID uuid.UUID, movementType MovementType, quantity int, reason, reference string) (Movement, error) {
	if !movementType.IsValid() {
		return Movement{}, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Movement type must be 'in' or 'out'")
	}
	if quantity <= 0 {
		return Movement{}, shared.NewDomainError(shared.CodeInvalidQuantity, "Movement quantity must be greater than zero")
	}

	return Movement{
		ID:        uuid.New(),
		TenantID:  tenantID,
		ProductID: productID,
		Type:      movementType,
		Quantity:  quantity,
		Reason:    reason,
		Reference: reference,
		CreatedAt: time.Now(),
	}, nil
}

// Delta returns the signed stock change this movement applies
func (m Movement) Delta() int {
	if m.Type == MovementOut {
		return -m.Quantity
	}
	return m.Quantity
}
