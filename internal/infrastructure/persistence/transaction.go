package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/storekit/backend/internal/domain/shared"
)

type txContextKey struct{}

// GormTransactionManager implements shared.TransactionManager by
// carrying the open *gorm.DB transaction in the context, where the
// repositories pick it up through dbFor.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// Transact runs fn inside one database transaction
func (m *GormTransactionManager) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// dbFor returns the transaction bound to ctx when one is active,
// otherwise the repository's own connection
func dbFor(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return db
}

var _ shared.TransactionManager = (*GormTransactionManager)(nil)
