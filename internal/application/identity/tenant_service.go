package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/domain/shared"
)

// TenantService handles store registration and lifecycle
type TenantService struct {
	tenantRepo identity.TenantRepository
	publisher  shared.EventPublisher
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo identity.TenantRepository, publisher shared.EventPublisher) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		publisher:  publisher,
	}
}

// Create registers a new store. The subdomain uniqueness check is a
// best-effort pre-check; the unique index is the actual guarantee.
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	subdomain := identity.NormalizeSubdomain(req.Subdomain)

	exists, err := s.tenantRepo.ExistsBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SUBDOMAIN_TAKEN", "Subdomain is already in use")
	}

	tenant, err := identity.NewTenant(req.Name, req.Subdomain)
	if err != nil {
		return nil, err
	}
	tenant.Notes = req.Notes

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, tenant)

	return ToTenantResponse(tenant), nil
}

// Update renames a store. The subdomain is immutable.
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tenant.Update(req.Name); err != nil {
		return nil, err
	}
	tenant.Notes = req.Notes

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, tenant)

	return ToTenantResponse(tenant), nil
}

// Activate enables a store
func (s *TenantService) Activate(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate disables a store without deleting its data
func (s *TenantService) Deactivate(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *TenantService) setActive(ctx context.Context, id uuid.UUID, active bool) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		tenant.Activate()
	} else {
		tenant.Deactivate()
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, tenant)

	return ToTenantResponse(tenant), nil
}

// GetByID fetches one tenant
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTenantResponse(tenant), nil
}

// ResolveBySubdomain finds the active tenant behind a subdomain. Used
// by the tenant-resolution middleware on every request.
func (s *TenantService) ResolveBySubdomain(ctx context.Context, subdomain string) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindBySubdomain(ctx, identity.NormalizeSubdomain(subdomain))
	if err != nil {
		return nil, err
	}
	if !tenant.Active {
		return nil, shared.NewDomainError("TENANT_INACTIVE", "Store is deactivated")
	}
	return ToTenantResponse(tenant), nil
}

// List returns a page of tenants
func (s *TenantService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[TenantResponse], error) {
	tenants, err := s.tenantRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.tenantRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *ToTenantResponse(&tenants[i])
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *TenantService) publishEvents(ctx context.Context, tenant *identity.Tenant) {
	if s.publisher == nil {
		return
	}
	events := tenant.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	tenant.ClearDomainEvents()
}
