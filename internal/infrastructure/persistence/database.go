package persistence

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/domain/inventory"
	"github.com/storekit/backend/internal/domain/ledger"
	"github.com/storekit/backend/internal/domain/partner"
	"github.com/storekit/backend/internal/domain/sales"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/infrastructure/config"
)

// NewDatabase opens a postgres connection with pooling configured from
// the application config
func NewDatabase(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	logger.Info("database connected",
		zap.String("host", cfg.Host),
		zap.String("dbname", cfg.DBName),
	)

	return db, nil
}

// NewSQLiteDatabase opens an in-memory sqlite database, used in tests
func NewSQLiteDatabase() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates the schema for all persisted aggregates. The SQL
// migration files are the source of truth in production; this is for
// tests and development.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identity.Tenant{},
		&identity.User{},
		&catalog.Product{},
		&partner.Supplier{},
		&partner.Customer{},
		&inventory.Movement{},
		&inventory.StockLevel{},
		&ledger.Entry{},
		&sales.Sale{},
		&sales.SaleLineItem{},
	)
}

// applyFilter applies pagination, ordering, and search to a query
func applyFilter(db *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		conditions := make([]string, len(searchColumns))
		args := make([]any, len(searchColumns))
		for i, col := range searchColumns {
			conditions[i] = col + " LIKE ?"
			args[i] = pattern
		}
		db = db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}

	if filter.OrderBy != "" {
		dir := "ASC"
		if filter.OrderDir == "desc" {
			dir = "DESC"
		}
		db = db.Order(filter.OrderBy + " " + dir)
	}

	if filter.PageSize > 0 {
		db = db.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return db
}
