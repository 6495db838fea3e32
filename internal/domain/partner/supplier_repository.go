package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByIDForTenant finds a supplier by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Supplier, error)

	// FindByEmail finds a supplier by email within a tenant
	FindByEmail(ctx context.Context, tenantID uuid.UUID, email valueobject.Email) (*Supplier, error)

	// FindAllForTenant finds all suppliers for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// DeleteForTenant deletes a supplier within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts suppliers for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByEmail checks if a supplier with the given email exists in the tenant
	ExistsByEmail(ctx context.Context, tenantID uuid.UUID, email valueobject.Email) (bool, error)
}
