package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// Supplier represents a party the store purchases goods from
type Supplier struct {
	shared.TenantAggregateRoot
	Name    string            `gorm:"type:varchar(200);not null"`
	Email   valueobject.Email `gorm:"type:varchar(255);not null;index"`
	Phone   string            `gorm:"type:varchar(30)"`
	Address string            `gorm:"type:text"`
	Notes   string            `gorm:"type:text"`
	Active  bool              `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new active supplier
func NewSupplier(tenantID uuid.UUID, name, email, phone string) (*Supplier, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}

	supplier := &Supplier{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Email:               emailVO,
		Phone:               phone,
		Active:              true,
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))

	return supplier, nil
}

// Update updates the supplier's contact details
func (s *Supplier) Update(name, email, phone, address, notes string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}

	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return err
	}

	s.Name = name
	s.Email = emailVO
	s.Phone = phone
	s.Address = address
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierUpdatedEvent(s))

	return nil
}

// Deactivate marks the supplier as inactive. Inactive suppliers are kept
// for ledger history but excluded from purchasing.
func (s *Supplier) Deactivate() {
	if !s.Active {
		return
	}
	s.Active = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	s.AddDomainEvent(NewSupplierDeactivatedEvent(s))
}

// Activate reinstates an inactive supplier
func (s *Supplier) Activate() {
	if s.Active {
		return
	}
	s.Active = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

func validatePartnerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
