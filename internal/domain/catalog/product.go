package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// Product represents a sellable item in a store's catalog
type Product struct {
	shared.TenantAggregateRoot
	SKU               string            `gorm:"type:varchar(50);not null;index"`
	Name              string            `gorm:"type:varchar(200);not null"`
	Description       string            `gorm:"type:text"`
	UnitPrice         valueobject.Money `gorm:"type:decimal(18,4);not null;default:0"`
	CostPrice         valueobject.Money `gorm:"type:decimal(18,4);not null;default:0"`
	LowStockThreshold int               `gorm:"not null;default:0"`
	Active            bool              `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(tenantID uuid.UUID, sku, name string, unitPrice, costPrice valueobject.Money) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	product := &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SKU:                 strings.ToUpper(sku),
		Name:                name,
		UnitPrice:           unitPrice,
		CostPrice:           costPrice,
		Active:              true,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's display fields
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetPricing updates unit and cost prices. Money construction already
// guarantees both are non-negative.
func (p *Product) SetPricing(unitPrice, costPrice valueobject.Money) {
	old := p.UnitPrice
	p.UnitPrice = unitPrice
	p.CostPrice = costPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	if !old.Equals(unitPrice) {
		p.AddDomainEvent(NewProductPriceChangedEvent(p, old, unitPrice))
	}
}

// SetLowStockThreshold sets the stock level below which the product is
// reported as low stock
func (p *Product) SetLowStockThreshold(threshold int) error {
	if threshold < 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Low stock threshold cannot be negative")
	}
	p.LowStockThreshold = threshold
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Margin returns the absolute margin (unit price minus cost) as a
// decimal; negative when the product sells below cost
func (p *Product) Margin() decimal.Decimal {
	return p.UnitPrice.Amount().Sub(p.CostPrice.Amount())
}

// Deactivate removes the product from sale without deleting history
func (p *Product) Deactivate() {
	if !p.Active {
		return
	}
	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewProductDeactivatedEvent(p))
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "Product SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "Product SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
