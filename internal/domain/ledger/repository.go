package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/shared"
)

// EntryRepository defines the interface for ledger persistence.
// Entries are append-only; there is no update or delete.
type EntryRepository interface {
	// Save appends a ledger entry
	Save(ctx context.Context, entry *Entry) error

	// FindByEntity lists entries for one customer or supplier
	FindByEntity(ctx context.Context, tenantID uuid.UUID, entityType EntityType, entityID uuid.UUID, filter shared.Filter) ([]Entry, error)

	// CountByEntity counts entries for one customer or supplier
	CountByEntity(ctx context.Context, tenantID uuid.UUID, entityType EntityType, entityID uuid.UUID) (int64, error)

	// CalculateEntityBalance computes sum(credits) - sum(debits) for an entity
	CalculateEntityBalance(ctx context.Context, tenantID uuid.UUID, entityType EntityType, entityID uuid.UUID) (decimal.Decimal, error)
}
