package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/inventory"
	"github.com/storekit/backend/internal/domain/shared"
)

func TestGormInventoryRepository_EmptyProductHasZeroStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()

	inv, err := repo.FindByProduct(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, inv.CurrentStock)
	assert.Empty(t, inv.Movements)
}

func TestGormInventoryRepository_SaveMovementRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()

	in, err := inventory.NewMovement(tenantID, productID, inventory.MovementIn, 10, "initial stock", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveMovement(ctx, in, 10))

	out, err := inventory.NewMovement(tenantID, productID, inventory.MovementOut, 4, "sale", "S-000001")
	require.NoError(t, err)
	require.NoError(t, repo.SaveMovement(ctx, out, 6))

	inv, err := repo.FindByProduct(ctx, tenantID, productID)
	require.NoError(t, err)
	assert.Equal(t, 6, inv.CurrentStock)
	require.Len(t, inv.Movements, 2)
	assert.Equal(t, 10, inv.TotalIncoming())
	assert.Equal(t, 4, inv.TotalOutgoing())
}

func TestGormInventoryRepository_RejectsNegativeStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()

	m, err := inventory.NewMovement(uuid.New(), uuid.New(), inventory.MovementOut, 5, "oversell", "")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.SaveMovement(ctx, m, -1), shared.ErrInsufficientStock)
}

func TestGormInventoryRepository_FindMovementsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()

	first, err := inventory.NewMovement(tenantID, productID, inventory.MovementIn, 5, "first", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveMovement(ctx, first, 5))

	second, err := inventory.NewMovement(tenantID, productID, inventory.MovementIn, 3, "second", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveMovement(ctx, second, 8))

	movements, err := repo.FindMovements(ctx, tenantID, productID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.False(t, movements[0].CreatedAt.Before(movements[1].CreatedAt))
}

func TestGormInventoryRepository_FindLowStock(t *testing.T) {
	db := setupTestDB(t)
	productRepo := NewGormProductRepository(db)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	low, err := catalog.NewProduct(tenantID, "LOW-001", "Running Out", usd(t, 5), usd(t, 2))
	require.NoError(t, err)
	require.NoError(t, low.SetLowStockThreshold(10))
	require.NoError(t, productRepo.Save(ctx, low))

	healthy, err := catalog.NewProduct(tenantID, "OK-001", "Well Stocked", usd(t, 5), usd(t, 2))
	require.NoError(t, err)
	require.NoError(t, healthy.SetLowStockThreshold(2))
	require.NoError(t, productRepo.Save(ctx, healthy))

	mLow, err := inventory.NewMovement(tenantID, low.ID, inventory.MovementIn, 5, "stock", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveMovement(ctx, mLow, 5))

	mOK, err := inventory.NewMovement(tenantID, healthy.ID, inventory.MovementIn, 5, "stock", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveMovement(ctx, mOK, 5))

	levels, err := repo.FindLowStock(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, low.ID, levels[0].ProductID)
	assert.Equal(t, 5, levels[0].CurrentStock)
}
