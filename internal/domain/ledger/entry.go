package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// EntryType classifies a ledger entry
type EntryType string

const (
	// EntryDebit records money owed to the store (or paid out by it)
	EntryDebit EntryType = "debit"
	// EntryCredit records money received by the store (or owed by it)
	EntryCredit EntryType = "credit"
)

// IsValid checks if the entry type is a known value
func (t EntryType) IsValid() bool {
	return t == EntryDebit || t == EntryCredit
}

// EntityType identifies which kind of party a ledger entry belongs to
type EntityType string

const (
	EntityCustomer EntityType = "customer"
	EntitySupplier EntityType = "supplier"
)

// IsValid checks if the entity type is a known value
func (t EntityType) IsValid() bool {
	return t == EntityCustomer || t == EntitySupplier
}

// Entry is one immutable accounting record against a customer or
// supplier. The balance for an entity is sum(credits) minus sum(debits).
type Entry struct {
	shared.TenantAggregateRoot
	EntityType  EntityType        `gorm:"type:varchar(20);not null;index:idx_ledger_entity,priority:2"`
	EntityID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_ledger_entity,priority:3"`
	Type        EntryType         `gorm:"type:varchar(10);not null"`
	Amount      valueobject.Money `gorm:"type:decimal(18,4);not null"`
	Description string            `gorm:"type:varchar(500)"`
	Reference   string            `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "ledger_entries"
}

// NewEntry creates a ledger entry. Amount non-negativity is already
// guaranteed by Money construction.
func NewEntry(tenantID uuid.UUID, entityType EntityType, entityID uuid.UUID, entryType EntryType, amount valueobject.Money, description, reference string) (*Entry, error) {
	if !entityType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTITY_TYPE", "Entity type must be 'customer' or 'supplier'")
	}
	if !entryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTRY_TYPE", "Entry type must be 'debit' or 'credit'")
	}

	return &Entry{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EntityType:          entityType,
		EntityID:            entityID,
		Type:                entryType,
		Amount:              amount,
		Description:         description,
		Reference:           reference,
	}, nil
}

// SignedAmount returns the entry's contribution to the entity balance:
// credits positive, debits negative
func (e *Entry) SignedAmount() decimal.Decimal {
	if e.Type == EntryDebit {
		return e.Amount.Amount().Neg()
	}
	return e.Amount.Amount()
}

// Balance folds a list of entries into a single signed balance
func Balance(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].SignedAmount())
	}
	return total
}
