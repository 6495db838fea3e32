package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

func usd(t *testing.T, amount float64) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromFloat(amount, valueobject.USD)
	require.NoError(t, err)
	return m
}

func TestNewEntry(t *testing.T) {
	tenantID, entityID := uuid.New(), uuid.New()

	t.Run("creates a credit entry", func(t *testing.T) {
		e, err := NewEntry(tenantID, EntityCustomer, entityID, EntryCredit, usd(t, 100), "payment", "sale-42")
		require.NoError(t, err)
		assert.True(t, e.SignedAmount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("debit contributes negatively", func(t *testing.T) {
		e, err := NewEntry(tenantID, EntitySupplier, entityID, EntryDebit, usd(t, 40), "invoice", "")
		require.NoError(t, err)
		assert.True(t, e.SignedAmount().Equal(decimal.NewFromInt(-40)))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		_, err := NewEntry(tenantID, EntityType("vendor"), entityID, EntryCredit, usd(t, 1), "", "")
		assert.Error(t, err)
		_, err = NewEntry(tenantID, EntityCustomer, entityID, EntryType("refund"), usd(t, 1), "", "")
		assert.Error(t, err)
	})
}

func TestBalance(t *testing.T) {
	tenantID, entityID := uuid.New(), uuid.New()

	mk := func(et EntryType, amount float64) Entry {
		e, err := NewEntry(tenantID, EntityCustomer, entityID, et, usd(t, amount), "", "")
		require.NoError(t, err)
		return *e
	}

	entries := []Entry{
		mk(EntryCredit, 100),
		mk(EntryDebit, 30),
		mk(EntryCredit, 50),
		mk(EntryDebit, 20),
	}

	assert.True(t, Balance(entries).Equal(decimal.NewFromInt(100)))
	assert.True(t, Balance(nil).IsZero())
}
