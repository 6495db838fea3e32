package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/sales"
	"github.com/storekit/backend/internal/domain/shared"
)

func buildSale(t *testing.T, tenantID uuid.UUID, number string) *sales.Sale {
	t.Helper()

	item1, err := sales.NewSaleLineItem(uuid.New(), "WDG-001", "Widget", 2, usd(t, 10))
	require.NoError(t, err)
	item2, err := sales.NewSaleLineItem(uuid.New(), "GAD-001", "Gadget", 1, usd(t, 5))
	require.NoError(t, err)

	sale, err := sales.NewSale(tenantID, number, uuid.New(), nil,
		[]sales.SaleLineItem{item1, item2}, usd(t, 25), usd(t, 4), usd(t, 29))
	require.NoError(t, err)
	return sale
}

func TestGormSaleRepository_SaveAndFindWithItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	sale := buildSale(t, tenantID, "S-000001")
	require.NoError(t, repo.Save(ctx, sale))

	found, err := repo.FindByIDForTenant(ctx, tenantID, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "S-000001", found.Number)
	require.Len(t, found.Items, 2)
	assert.True(t, found.Total.Amount().Equal(sale.Total.Amount()))

	byNumber, err := repo.FindByNumber(ctx, tenantID, "S-000001")
	require.NoError(t, err)
	assert.Equal(t, sale.ID, byNumber.ID)
}

func TestGormSaleRepository_TenantIsolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	sale := buildSale(t, tenantID, "S-000001")
	require.NoError(t, repo.Save(ctx, sale))

	_, err := repo.FindByIDForTenant(ctx, uuid.New(), sale.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormSaleRepository_NextNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	number, err := repo.NextNumber(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, "S-000001", number)

	require.NoError(t, repo.Save(ctx, buildSale(t, tenantID, number)))

	number, err = repo.NextNumber(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, "S-000002", number)
}

func TestGormSaleRepository_SaveCompletedSale(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	sale := buildSale(t, tenantID, "S-000001")
	require.NoError(t, sale.Complete(sales.PaymentCash))
	require.NoError(t, repo.Save(ctx, sale))

	found, err := repo.FindByIDForTenant(ctx, tenantID, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.SaleStatusCompleted, found.Status)
	assert.Equal(t, sales.PaymentCash, found.Payment)
	assert.NotNil(t, found.PaidAt)
}

func TestGormSaleRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.Save(ctx, buildSale(t, tenantID, "S-000001")))
	require.NoError(t, repo.Save(ctx, buildSale(t, tenantID, "S-000002")))

	list, err := repo.FindAllForTenant(ctx, tenantID, shared.Filter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	count, err := repo.CountForTenant(ctx, tenantID, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
