package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/storekit/backend/internal/domain/ledger"
)

// newMockEntryRepository creates a GormEntryRepository backed by sqlmock,
// used to pin down the SQL the balance aggregation emits against postgres.
func newMockEntryRepository(t *testing.T) (*GormEntryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewGormEntryRepository(gormDB), mock, mockDB
}

func TestGormEntryRepository_CalculateEntityBalanceSQL(t *testing.T) {
	t.Run("sums credits minus debits in the database", func(t *testing.T) {
		repo, mock, mockDB := newMockEntryRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		customerID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN type = \$1 THEN amount ELSE -amount END\), 0\) FROM "ledger_entries" WHERE tenant_id = \$2 AND entity_type = \$3 AND entity_id = \$4`).
			WithArgs(string(ledger.EntryCredit), tenantID, string(ledger.EntityCustomer), customerID).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("125.5"))

		balance, err := repo.CalculateEntityBalance(context.Background(), tenantID, ledger.EntityCustomer, customerID)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(125.5).Equal(balance))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty ledger yields zero", func(t *testing.T) {
		repo, mock, mockDB := newMockEntryRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		supplierID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

		balance, err := repo.CalculateEntityBalance(context.Background(), tenantID, ledger.EntitySupplier, supplierID)

		require.NoError(t, err)
		assert.True(t, balance.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
