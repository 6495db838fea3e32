package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByIDForTenant finds a sale with its line items within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Sale, error)

	// FindByNumber finds a sale by its human-readable number
	FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*Sale, error)

	// FindAllForTenant lists sales for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Sale, error)

	// Save creates or updates a sale together with its line items
	Save(ctx context.Context, sale *Sale) error

	// CountForTenant counts sales for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// NextNumber allocates the next sale number for a tenant
	NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
