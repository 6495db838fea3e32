package partner

import (
	"github.com/storekit/backend/internal/domain/shared"
)

// Aggregate type constant for Supplier
const AggregateTypeSupplier = "Supplier"

// Event type constants for Supplier
const (
	EventTypeSupplierCreated     = "SupplierCreated"
	EventTypeSupplierUpdated     = "SupplierUpdated"
	EventTypeSupplierDeactivated = "SupplierDeactivated"
)

// SupplierCreatedEvent is published when a new supplier is created
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewSupplierCreatedEvent creates a new SupplierCreatedEvent
func NewSupplierCreatedEvent(supplier *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, AggregateTypeSupplier, supplier.ID, supplier.TenantID),
		Name:            supplier.Name,
		Email:           supplier.Email.String(),
	}
}

// SupplierUpdatedEvent is published when a supplier's details change
type SupplierUpdatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewSupplierUpdatedEvent creates a new SupplierUpdatedEvent
func NewSupplierUpdatedEvent(supplier *Supplier) *SupplierUpdatedEvent {
	return &SupplierUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierUpdated, AggregateTypeSupplier, supplier.ID, supplier.TenantID),
		Name:            supplier.Name,
		Email:           supplier.Email.String(),
	}
}

// SupplierDeactivatedEvent is published when a supplier is deactivated
type SupplierDeactivatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewSupplierDeactivatedEvent creates a new SupplierDeactivatedEvent
func NewSupplierDeactivatedEvent(supplier *Supplier) *SupplierDeactivatedEvent {
	return &SupplierDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierDeactivated, AggregateTypeSupplier, supplier.ID, supplier.TenantID),
		Name:            supplier.Name,
	}
}
