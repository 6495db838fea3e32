package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

func money(t *testing.T, amount float64) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromFloat(amount, valueobject.USD)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates product and uppercases SKU", func(t *testing.T) {
		p, err := NewProduct(tenantID, "sku-001", "Espresso Beans", money(t, 12.50), money(t, 7.00))
		require.NoError(t, err)

		assert.Equal(t, "SKU-001", p.SKU)
		assert.True(t, p.Active)
		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())
	})

	t.Run("fails with bad SKU", func(t *testing.T) {
		_, err := NewProduct(tenantID, "sku 001!", "Espresso", money(t, 1), money(t, 1))
		assert.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct(tenantID, "SKU-001", "", money(t, 1), money(t, 1))
		assert.Error(t, err)
	})
}

func TestProduct_SetPricing(t *testing.T) {
	tenantID := uuid.New()
	p, err := NewProduct(tenantID, "SKU-001", "Espresso Beans", money(t, 12.50), money(t, 7.00))
	require.NoError(t, err)
	p.ClearDomainEvents()

	p.SetPricing(money(t, 14.00), money(t, 7.00))

	assert.True(t, p.UnitPrice.Amount().Equal(decimal.NewFromInt(14)))
	events := p.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeProductPriceChanged, events[0].EventType())

	// unchanged price emits nothing
	p.ClearDomainEvents()
	p.SetPricing(money(t, 14.00), money(t, 8.00))
	assert.Empty(t, p.GetDomainEvents())
}

func TestProduct_Margin(t *testing.T) {
	tenantID := uuid.New()
	p, err := NewProduct(tenantID, "SKU-001", "Espresso Beans", money(t, 12.50), money(t, 7.00))
	require.NoError(t, err)

	assert.True(t, p.Margin().Equal(decimal.NewFromFloat(5.5)))
}

func TestProduct_SetLowStockThreshold(t *testing.T) {
	tenantID := uuid.New()
	p, err := NewProduct(tenantID, "SKU-001", "Espresso Beans", money(t, 12.50), money(t, 7.00))
	require.NoError(t, err)

	require.NoError(t, p.SetLowStockThreshold(10))
	assert.Equal(t, 10, p.LowStockThreshold)
	assert.Error(t, p.SetLowStockThreshold(-1))
}
