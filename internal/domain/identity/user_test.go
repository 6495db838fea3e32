package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser(tenantID, "Owner@Store.com", "Pat", "s3cret-pass", RoleOwner)
		require.NoError(t, err)

		assert.Equal(t, "owner@store.com", user.Email.String())
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.True(t, user.CheckPassword("s3cret-pass"))
		assert.False(t, user.CheckPassword("wrong"))
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser(tenantID, "a@b.com", "Pat", "short", RoleCashier)
		assert.Error(t, err)
	})

	t.Run("fails with invalid role", func(t *testing.T) {
		_, err := NewUser(tenantID, "a@b.com", "Pat", "s3cret-pass", Role("admin"))
		assert.Error(t, err)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewUser(tenantID, "not-an-email", "Pat", "s3cret-pass", RoleCashier)
		assert.Error(t, err)
	})
}

func TestUser_HasPermission(t *testing.T) {
	tenantID := uuid.New()

	owner, err := NewUser(tenantID, "o@s.com", "O", "password1", RoleOwner)
	require.NoError(t, err)
	cashier, err := NewUser(tenantID, "c@s.com", "C", "password1", RoleCashier)
	require.NoError(t, err)

	assert.True(t, owner.HasPermission(PermissionManageTenant))
	assert.True(t, owner.HasPermission(PermissionCreateSales))

	assert.True(t, cashier.HasPermission(PermissionCreateSales))
	assert.False(t, cashier.HasPermission(PermissionManagePartners))
	assert.False(t, cashier.HasPermission(PermissionManageTenant))
}
