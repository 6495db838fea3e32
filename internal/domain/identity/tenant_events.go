package identity

import (
	"github.com/storekit/backend/internal/domain/shared"
)

// Aggregate type constant for Tenant
const AggregateTypeTenant = "Tenant"

// Event type constants for Tenant
const (
	EventTypeTenantCreated     = "TenantCreated"
	EventTypeTenantUpdated     = "TenantUpdated"
	EventTypeTenantActivated   = "TenantActivated"
	EventTypeTenantDeactivated = "TenantDeactivated"
)

// TenantCreatedEvent is published when a new tenant is created
type TenantCreatedEvent struct {
	shared.BaseDomainEvent
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
}

// NewTenantCreatedEvent creates a new TenantCreatedEvent
func NewTenantCreatedEvent(tenant *Tenant) *TenantCreatedEvent {
	return &TenantCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantCreated, AggregateTypeTenant, tenant.ID, tenant.ID),
		Name:            tenant.Name,
		Subdomain:       tenant.Subdomain,
	}
}

// TenantUpdatedEvent is published when a tenant's details change
type TenantUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewTenantUpdatedEvent creates a new TenantUpdatedEvent
func NewTenantUpdatedEvent(tenant *Tenant) *TenantUpdatedEvent {
	return &TenantUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantUpdated, AggregateTypeTenant, tenant.ID, tenant.ID),
		Name:            tenant.Name,
	}
}

// TenantActivatedEvent is published when a tenant transitions to active
type TenantActivatedEvent struct {
	shared.BaseDomainEvent
	Subdomain string `json:"subdomain"`
}

// NewTenantActivatedEvent creates a new TenantActivatedEvent
func NewTenantActivatedEvent(tenant *Tenant) *TenantActivatedEvent {
	return &TenantActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantActivated, AggregateTypeTenant, tenant.ID, tenant.ID),
		Subdomain:       tenant.Subdomain,
	}
}

// TenantDeactivatedEvent is published when a tenant transitions to inactive
type TenantDeactivatedEvent struct {
	shared.BaseDomainEvent
	Subdomain string `json:"subdomain"`
}

// NewTenantDeactivatedEvent creates a new TenantDeactivatedEvent
func NewTenantDeactivatedEvent(tenant *Tenant) *TenantDeactivatedEvent {
	return &TenantDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantDeactivated, AggregateTypeTenant, tenant.ID, tenant.ID),
		Subdomain:       tenant.Subdomain,
	}
}
