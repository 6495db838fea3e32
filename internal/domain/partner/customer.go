package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// Customer represents a party the store sells to, possibly on credit
type Customer struct {
	shared.TenantAggregateRoot
	Name                  string            `gorm:"type:varchar(200);not null"`
	Email                 valueobject.Email `gorm:"type:varchar(255);not null;index"`
	Phone                 string            `gorm:"type:varchar(30)"`
	Address               string            `gorm:"type:text"`
	CreditLimit           valueobject.Money `gorm:"type:decimal(18,4);not null;default:0"`
	HasOutstandingBalance bool              `gorm:"not null;default:false"`
	LastPaymentDate       *time.Time        `gorm:""`
	Active                bool              `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new active customer with the given credit limit
func NewCustomer(tenantID uuid.UUID, name, email, phone string, creditLimit valueobject.Money) (*Customer, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}

	customer := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Email:               emailVO,
		Phone:               phone,
		CreditLimit:         creditLimit,
		Active:              true,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// Update updates the customer's contact details
func (c *Customer) Update(name, email, phone, address string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}

	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return err
	}

	c.Name = name
	c.Email = emailVO
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// SetCreditLimit changes the customer's credit limit
func (c *Customer) SetCreditLimit(limit valueobject.Money) {
	c.CreditLimit = limit
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// RecordPayment registers a received payment: the payment date moves
// forward and, when the payment clears the account, the outstanding
// flag is lowered by the caller via MarkSettled
func (c *Customer) RecordPayment(at time.Time) {
	c.LastPaymentDate = &at
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// MarkOutstanding flags the customer as carrying an unpaid balance
func (c *Customer) MarkOutstanding() {
	if c.HasOutstandingBalance {
		return
	}
	c.HasOutstandingBalance = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// MarkSettled clears the outstanding-balance flag
func (c *Customer) MarkSettled() {
	if !c.HasOutstandingBalance {
		return
	}
	c.HasOutstandingBalance = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() {
	if !c.Active {
		return
	}
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	c.AddDomainEvent(NewCustomerDeactivatedEvent(c))
}
