package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/domain/shared"
)

type mockTenantRepo struct{ mock.Mock }

func (m *mockTenantRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *mockTenantRepo) FindBySubdomain(ctx context.Context, subdomain string) (*identity.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *mockTenantRepo) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Tenant, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *mockTenantRepo) Save(ctx context.Context, tenant *identity.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *mockTenantRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTenantRepo) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	args := m.Called(ctx, subdomain)
	return args.Bool(0), args.Error(1)
}

func TestTenantService_Create(t *testing.T) {
	t.Run("creates a tenant", func(t *testing.T) {
		repo := new(mockTenantRepo)
		repo.On("ExistsBySubdomain", mock.Anything, "acme-store").Return(false, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := NewTenantService(repo, nil)
		resp, err := svc.Create(context.Background(), CreateTenantRequest{Name: "Acme", Subdomain: "acme-store"})
		require.NoError(t, err)
		assert.Equal(t, "acme-store", resp.Subdomain)
		assert.True(t, resp.Active)
		repo.AssertExpectations(t)
	})

	t.Run("rejects taken subdomain", func(t *testing.T) {
		repo := new(mockTenantRepo)
		repo.On("ExistsBySubdomain", mock.Anything, "acme-store").Return(true, nil)

		svc := NewTenantService(repo, nil)
		_, err := svc.Create(context.Background(), CreateTenantRequest{Name: "Acme", Subdomain: "acme-store"})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid subdomain characters", func(t *testing.T) {
		repo := new(mockTenantRepo)
		repo.On("ExistsBySubdomain", mock.Anything, mock.Anything).Return(false, nil)

		svc := NewTenantService(repo, nil)
		_, err := svc.Create(context.Background(), CreateTenantRequest{Name: "Acme", Subdomain: "ACME Store!"})
		require.Error(t, err)
	})
}

func TestTenantService_ResolveBySubdomain(t *testing.T) {
	tenant, err := identity.NewTenant("Acme", "acme-store")
	require.NoError(t, err)

	t.Run("resolves an active tenant", func(t *testing.T) {
		repo := new(mockTenantRepo)
		repo.On("FindBySubdomain", mock.Anything, "acme-store").Return(tenant, nil)

		svc := NewTenantService(repo, nil)
		resp, err := svc.ResolveBySubdomain(context.Background(), "Acme-Store")
		require.NoError(t, err)
		assert.Equal(t, tenant.ID, resp.ID)
	})

	t.Run("refuses a deactivated tenant", func(t *testing.T) {
		inactive, err := identity.NewTenant("Closed", "closed-store")
		require.NoError(t, err)
		inactive.Deactivate()

		repo := new(mockTenantRepo)
		repo.On("FindBySubdomain", mock.Anything, "closed-store").Return(inactive, nil)

		svc := NewTenantService(repo, nil)
		_, err = svc.ResolveBySubdomain(context.Background(), "closed-store")
		require.Error(t, err)
	})
}
