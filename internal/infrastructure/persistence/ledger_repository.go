package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storekit/backend/internal/domain/ledger"
	"github.com/storekit/backend/internal/domain/shared"
)

// GormEntryRepository implements ledger.EntryRepository using GORM.
// The ledger is append-only, so there is no update or delete path.
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// Save appends a ledger entry, joining an ambient transaction when the
// context carries one
func (r *GormEntryRepository) Save(ctx context.Context, entry *ledger.Entry) error {
	return dbFor(ctx, r.db).WithContext(ctx).Create(entry).Error
}

// FindByEntity lists entries for one customer or supplier, newest first
func (r *GormEntryRepository) FindByEntity(ctx context.Context, tenantID uuid.UUID, entityType ledger.EntityType, entityID uuid.UUID, filter shared.Filter) ([]ledger.Entry, error) {
	var entries []ledger.Entry
	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND entity_type = ? AND entity_id = ?", tenantID, entityType, entityID).
		Order("created_at DESC")
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByEntity counts entries for one customer or supplier
func (r *GormEntryRepository) CountByEntity(ctx context.Context, tenantID uuid.UUID, entityType ledger.EntityType, entityID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.Entry{}).
		Where("tenant_id = ? AND entity_type = ? AND entity_id = ?", tenantID, entityType, entityID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CalculateEntityBalance computes sum(credits) - sum(debits) in the database
func (r *GormEntryRepository) CalculateEntityBalance(ctx context.Context, tenantID uuid.UUID, entityType ledger.EntityType, entityID uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&ledger.Entry{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)", ledger.EntryCredit).
		Where("tenant_id = ? AND entity_type = ? AND entity_id = ?", tenantID, entityType, entityID).
		Scan(&balance).Error
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

var _ ledger.EntryRepository = (*GormEntryRepository)(nil)
