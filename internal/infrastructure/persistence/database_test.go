package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// setupTestDB opens the shared in-memory sqlite database. Tests isolate
// their data with fresh tenant IDs rather than fresh databases.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewSQLiteDatabase()
	require.NoError(t, err)
	return db
}

func usd(t *testing.T, amount float64) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromFloat(amount, valueobject.USD)
	require.NoError(t, err)
	return m
}
