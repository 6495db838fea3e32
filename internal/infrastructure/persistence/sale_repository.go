package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storekit/backend/internal/domain/sales"
	"github.com/storekit/backend/internal/domain/shared"
)

// GormSaleRepository implements sales.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByIDForTenant finds a sale with its line items within a tenant
func (r *GormSaleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindByNumber finds a sale by its human-readable number
func (r *GormSaleRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND number = ?", tenantID, number).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAllForTenant lists sales for a tenant, newest first
func (r *GormSaleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]sales.Sale, error) {
	var result []sales.Sale
	query := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("number LIKE ?", "%"+filter.Search+"%")
	}
	if filter.OrderBy != "" {
		dir := "ASC"
		if filter.OrderDir == "desc" {
			dir = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", filter.OrderBy, dir))
	} else {
		query = query.Order("created_at DESC")
	}
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Save creates or updates a sale together with its line items. Joins
// an ambient transaction when the context carries one.
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return dbFor(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(sale).Error
	})
}

// CountForTenant counts sales for a tenant
func (r *GormSaleRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&sales.Sale{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("number LIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NextNumber allocates the next sale number for a tenant
func (r *GormSaleRepository) NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	var count int64
	if err := dbFor(ctx, r.db).WithContext(ctx).
		Model(&sales.Sale{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("S-%06d", count+1), nil
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)
