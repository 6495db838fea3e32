package sales

import (
	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// SaleLineItem is one line of a sale. It is a value object: the total
// is derived from quantity and unit price at construction and the type
// is never mutated afterwards.
type SaleLineItem struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	SaleID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID         `gorm:"type:uuid;not null"`
	SKU        string            `gorm:"type:varchar(50);not null"`
	Name       string            `gorm:"type:varchar(200);not null"`
	Quantity   int               `gorm:"not null"`
	UnitPrice  valueobject.Money `gorm:"type:decimal(18,4);not null"`
	TotalPrice valueobject.Money `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SaleLineItem) TableName() string {
	return "sale_line_items"
}

// NewSaleLineItem creates a line item with its total derived from
// quantity times unit price
func NewSaleLineItem(productID uuid.UUID, sku, name string, quantity int, unitPrice valueobject.Money) (SaleLineItem, error) {
	if quantity <= 0 {
		return SaleLineItem{}, shared.NewDomainError(shared.CodeInvalidQuantity, "Line item quantity must be greater than zero")
	}

	total, err := unitPrice.MultiplyByInt(int64(quantity))
	if err != nil {
		return SaleLineItem{}, err
	}

	return SaleLineItem{
		ID:         uuid.New(),
		ProductID:  productID,
		SKU:        sku,
		Name:       name,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: total,
	}, nil
}
