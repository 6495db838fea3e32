package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storekit/backend/internal/domain/inventory"
	"github.com/storekit/backend/internal/domain/shared"
)

// GormInventoryRepository implements inventory.InventoryRepository
// using GORM. Stock levels live in their own table; the aggregate is
// reconstructed from the level row plus the movement log.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByProduct loads the inventory aggregate for a product. A product
// with no recorded movements has zero stock.
func (r *GormInventoryRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*inventory.ProductInventory, error) {
	var level inventory.StockLevel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		First(&level).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		level = inventory.StockLevel{ProductID: productID, TenantID: tenantID, CurrentStock: 0, UpdatedAt: time.Now()}
	}

	var movements []inventory.Movement
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}

	return inventory.NewProductInventory(tenantID, productID, level.CurrentStock, movements, level.UpdatedAt)
}

// SaveMovement appends a movement and updates the stock level in one
// transaction, joining an ambient transaction when the context carries
// one
func (r *GormInventoryRepository) SaveMovement(ctx context.Context, movement inventory.Movement, newStock int) error {
	if newStock < 0 {
		return shared.ErrInsufficientStock
	}
	return dbFor(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}
		level := inventory.StockLevel{
			ProductID:    movement.ProductID,
			TenantID:     movement.TenantID,
			CurrentStock: newStock,
			UpdatedAt:    time.Now(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"current_stock", "updated_at"}),
		}).Create(&level).Error
	})
}

// FindMovements lists movements for a product, newest first
func (r *GormInventoryRepository) FindMovements(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]inventory.Movement, error) {
	var movements []inventory.Movement
	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Order("created_at DESC")
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindLowStock lists stock levels at or below each product's threshold
func (r *GormInventoryRepository) FindLowStock(ctx context.Context, tenantID uuid.UUID) ([]inventory.StockLevel, error) {
	var levels []inventory.StockLevel
	if err := r.db.WithContext(ctx).
		Table("stock_levels").
		Joins("JOIN products ON products.id = stock_levels.product_id").
		Where("stock_levels.tenant_id = ? AND stock_levels.current_stock <= products.low_stock_threshold", tenantID).
		Select("stock_levels.*").
		Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// FindStockLevels lists the current stock for every product in a tenant
func (r *GormInventoryRepository) FindStockLevels(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]inventory.StockLevel, error) {
	var levels []inventory.StockLevel
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("updated_at DESC")
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

var _ inventory.InventoryRepository = (*GormInventoryRepository)(nil)
