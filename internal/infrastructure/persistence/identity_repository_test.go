package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/domain/shared"
)

func uniqueSubdomain(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("store-%s", uuid.NewString()[:8])
}

func TestGormTenantRepository_FindBySubdomain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	ctx := context.Background()

	subdomain := uniqueSubdomain(t)
	tenant, err := identity.NewTenant("Acme Hardware", subdomain)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tenant))

	found, err := repo.FindBySubdomain(ctx, subdomain)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, found.ID)
	assert.Equal(t, "Acme Hardware", found.Name)
	assert.True(t, found.Active)

	_, err = repo.FindBySubdomain(ctx, "no-such-store")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormTenantRepository_ExistsBySubdomain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	ctx := context.Background()

	subdomain := uniqueSubdomain(t)
	tenant, err := identity.NewTenant("Corner Shop", subdomain)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tenant))

	exists, err := repo.ExistsBySubdomain(ctx, subdomain)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySubdomain(ctx, uniqueSubdomain(t))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	email := fmt.Sprintf("owner-%s@example.com", uuid.NewString()[:8])
	user, err := identity.NewUser(tenantID, email, "Store Owner", "s3cret-pass", identity.RoleOwner)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByEmail(ctx, tenantID, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, identity.RoleOwner, found.Role)

	// Same email under another tenant is a different namespace
	_, err = repo.FindByEmail(ctx, uuid.New(), email)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
