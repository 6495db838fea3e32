package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates supplier with normalized email", func(t *testing.T) {
		s, err := NewSupplier(tenantID, "Fresh Produce Co", "Sales@Fresh.COM", "+52-555-0100")
		require.NoError(t, err)

		assert.Equal(t, "sales@fresh.com", s.Email.String())
		assert.True(t, s.Active)
		events := s.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSupplierCreated, events[0].EventType())
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewSupplier(tenantID, "Fresh Produce Co", "not-an-email", "")
		assert.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewSupplier(tenantID, "", "a@b.com", "")
		assert.Error(t, err)
	})
}

func TestSupplier_Deactivate(t *testing.T) {
	tenantID := uuid.New()
	s, err := NewSupplier(tenantID, "Fresh Produce Co", "sales@fresh.com", "")
	require.NoError(t, err)
	s.ClearDomainEvents()

	v := s.Version
	s.Deactivate()
	assert.False(t, s.Active)
	assert.Equal(t, v+1, s.Version)
	require.Len(t, s.GetDomainEvents(), 1)

	// second deactivate is a no-op
	s.ClearDomainEvents()
	s.Deactivate()
	assert.Empty(t, s.GetDomainEvents())
	assert.Equal(t, v+1, s.Version)
}
