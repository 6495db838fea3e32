package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/infrastructure/config"
)

func testManager(expiration time.Duration) *JWTManager {
	return NewJWTManager(config.JWTConfig{
		Secret:                "test-secret-key",
		AccessTokenExpiration: expiration,
		Issuer:                "storekit-test",
	})
}

func testUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser(uuid.New(), "pat@store.com", "Pat", "s3cret-pass", identity.RoleManager)
	require.NoError(t, err)
	return user
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := testManager(time.Hour)
	user := testUser(t)

	token, expiresAt, err := manager.Generate(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.TenantID, claims.TenantID)
	assert.Equal(t, "pat@store.com", claims.Email)
	assert.Equal(t, "manager", claims.Role)
}

func TestJWTManager_Verify(t *testing.T) {
	t.Run("rejects garbage", func(t *testing.T) {
		_, err := testManager(time.Hour).Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTManager(config.JWTConfig{Secret: "other-secret", AccessTokenExpiration: time.Hour, Issuer: "x"})
		token, _, err := other.Generate(testUser(t))
		require.NoError(t, err)

		_, err = testManager(time.Hour).Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		manager := testManager(-time.Minute)
		token, _, err := manager.Generate(testUser(t))
		require.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
