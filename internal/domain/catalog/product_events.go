package catalog

import (
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// Aggregate type constant for Product
const AggregateTypeProduct = "Product"

// Event type constants for Product
const (
	EventTypeProductCreated      = "ProductCreated"
	EventTypeProductUpdated      = "ProductUpdated"
	EventTypeProductPriceChanged = "ProductPriceChanged"
	EventTypeProductDeactivated  = "ProductDeactivated"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID, product.TenantID),
		SKU:             product.SKU,
		Name:            product.Name,
	}
}

// ProductUpdatedEvent is published when a product's details change
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID, product.TenantID),
		SKU:             product.SKU,
		Name:            product.Name,
	}
}

// ProductPriceChangedEvent is published when a product's unit price changes
type ProductPriceChangedEvent struct {
	shared.BaseDomainEvent
	SKU      string            `json:"sku"`
	OldPrice valueobject.Money `json:"old_price"`
	NewPrice valueobject.Money `json:"new_price"`
}

// NewProductPriceChangedEvent creates a new ProductPriceChangedEvent
func NewProductPriceChangedEvent(product *Product, oldPrice, newPrice valueobject.Money) *ProductPriceChangedEvent {
	return &ProductPriceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductPriceChanged, AggregateTypeProduct, product.ID, product.TenantID),
		SKU:             product.SKU,
		OldPrice:        oldPrice,
		NewPrice:        newPrice,
	}
}

// ProductDeactivatedEvent is published when a product is taken off sale
type ProductDeactivatedEvent struct {
	shared.BaseDomainEvent
	SKU string `json:"sku"`
}

// NewProductDeactivatedEvent creates a new ProductDeactivatedEvent
func NewProductDeactivatedEvent(product *Product) *ProductDeactivatedEvent {
	return &ProductDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeactivated, AggregateTypeProduct, product.ID, product.TenantID),
		SKU:             product.SKU,
	}
}
