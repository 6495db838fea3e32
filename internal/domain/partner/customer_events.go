package partner

import (
	"github.com/storekit/backend/internal/domain/shared"
)

// Aggregate type constant for Customer
const AggregateTypeCustomer = "Customer"

// Event type constants for Customer
const (
	EventTypeCustomerCreated     = "CustomerCreated"
	EventTypeCustomerUpdated     = "CustomerUpdated"
	EventTypeCustomerDeactivated = "CustomerDeactivated"
)

// CustomerCreatedEvent is published when a new customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(customer *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, customer.ID, customer.TenantID),
		Name:            customer.Name,
		Email:           customer.Email.String(),
	}
}

// CustomerUpdatedEvent is published when a customer's details change
type CustomerUpdatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewCustomerUpdatedEvent creates a new CustomerUpdatedEvent
func NewCustomerUpdatedEvent(customer *Customer) *CustomerUpdatedEvent {
	return &CustomerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerUpdated, AggregateTypeCustomer, customer.ID, customer.TenantID),
		Name:            customer.Name,
		Email:           customer.Email.String(),
	}
}

// CustomerDeactivatedEvent is published when a customer is deactivated
type CustomerDeactivatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCustomerDeactivatedEvent creates a new CustomerDeactivatedEvent
func NewCustomerDeactivatedEvent(customer *Customer) *CustomerDeactivatedEvent {
	return &CustomerDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerDeactivated, AggregateTypeCustomer, customer.ID, customer.TenantID),
		Name:            customer.Name,
	}
}
