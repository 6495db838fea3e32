package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/shared"
)

// TenantRepository defines the interface for tenant persistence.
// Subdomain uniqueness is guaranteed here (unique index), not in the
// domain layer.
type TenantRepository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindBySubdomain finds a tenant by its subdomain
	FindBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)

	// FindAll finds all tenants matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, error)

	// Save creates or updates a tenant
	Save(ctx context.Context, tenant *Tenant) error

	// Count counts tenants matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsBySubdomain checks if a tenant with the given subdomain exists
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)
}
