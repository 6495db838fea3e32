package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

func mustMovement(t *testing.T, tenantID, productID uuid.UUID, mt MovementType, qty int) Movement {
	t.Helper()
	m, err := NewMovement(tenantID, productID, mt, qty, "test", "")
	require.NoError(t, err)
	return m
}

func TestNewMovement(t *testing.T) {
	tenantID, productID := uuid.New(), uuid.New()

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewMovement(tenantID, productID, MovementIn, 0, "", "")
		assert.Error(t, err)
		_, err = NewMovement(tenantID, productID, MovementOut, -3, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewMovement(tenantID, productID, MovementType("adjust"), 1, "", "")
		assert.Error(t, err)
	})

	t.Run("delta carries the type's sign", func(t *testing.T) {
		in := mustMovement(t, tenantID, productID, MovementIn, 5)
		out := mustMovement(t, tenantID, productID, MovementOut, 3)
		assert.Equal(t, 5, in.Delta())
		assert.Equal(t, -3, out.Delta())
	})
}

func TestProductInventory_DerivedQueries(t *testing.T) {
	tenantID, productID := uuid.New(), uuid.New()

	in := mustMovement(t, tenantID, productID, MovementIn, 20)
	out := mustMovement(t, tenantID, productID, MovementOut, 8)
	old := mustMovement(t, tenantID, productID, MovementIn, 2)
	old.CreatedAt = time.Now().AddDate(0, 0, -45)

	pi, err := NewProductInventory(tenantID, productID, 14, []Movement{old, in, out}, time.Now())
	require.NoError(t, err)

	assert.True(t, pi.IsInStock())
	assert.True(t, pi.HasLowStock(14))
	assert.False(t, pi.HasLowStock(10))
	assert.True(t, pi.HasSufficientStock(14))
	assert.False(t, pi.HasSufficientStock(15))

	assert.Equal(t, 22, pi.TotalIncoming())
	assert.Equal(t, 8, pi.TotalOutgoing())
	assert.Equal(t, 9, pi.ProjectedStock(-5))
	assert.Equal(t, 14, pi.CurrentStock, "projection does not mutate")

	recent := pi.RecentMovements(30)
	assert.Len(t, recent, 2)

	price, err := valueobject.NewMoneyFromFloat(2.50, valueobject.USD)
	require.NoError(t, err)
	value, err := pi.StockValue(price)
	require.NoError(t, err)
	assert.Equal(t, "35.00 USD", value.Round(2).String())
}

func TestProductInventory_ApplyMovement(t *testing.T) {
	tenantID, productID := uuid.New(), uuid.New()
	pi, err := NewProductInventory(tenantID, productID, 10, nil, time.Now())
	require.NoError(t, err)

	t.Run("incoming movement returns a new aggregate", func(t *testing.T) {
		next, err := pi.ApplyMovement(mustMovement(t, tenantID, productID, MovementIn, 5))
		require.NoError(t, err)

		assert.Equal(t, 15, next.CurrentStock)
		assert.Equal(t, 10, pi.CurrentStock, "original unchanged")
		require.Len(t, next.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeStockIncreased, next.GetDomainEvents()[0].EventType())
	})

	t.Run("outgoing movement decreases stock", func(t *testing.T) {
		next, err := pi.ApplyMovement(mustMovement(t, tenantID, productID, MovementOut, 10))
		require.NoError(t, err)

		assert.Equal(t, 0, next.CurrentStock)
		require.Len(t, next.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeStockDecreased, next.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects movement that would drive stock negative", func(t *testing.T) {
		_, err := pi.ApplyMovement(mustMovement(t, tenantID, productID, MovementOut, 11))
		assert.Error(t, err)
	})
}

func TestLowStockSpecification(t *testing.T) {
	spec := NewProductIsLowStockSpecification()

	assert.True(t, spec.IsSatisfiedBy(StockSnapshot{CurrentStock: 5, LowStockThreshold: 10}))
	assert.False(t, spec.IsSatisfiedBy(StockSnapshot{CurrentStock: 15, LowStockThreshold: 10}))
	assert.True(t, spec.IsSatisfiedBy(StockSnapshot{CurrentStock: 10, LowStockThreshold: 10}))
}

func TestStockIsSufficientSpecification(t *testing.T) {
	spec := NewStockIsSufficientSpecification()

	assert.True(t, spec.IsSatisfiedBy(StockSnapshot{CurrentStock: 10, RequiredQuantity: 10}))
	assert.False(t, spec.IsSatisfiedBy(StockSnapshot{CurrentStock: 9, RequiredQuantity: 10}))
}
