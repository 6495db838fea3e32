package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/ledger"
	"github.com/storekit/backend/internal/domain/partner"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

type mockSupplierRepo struct{ mock.Mock }

func (m *mockSupplierRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) FindByEmail(ctx context.Context, tenantID uuid.UUID, email valueobject.Email) (*partner.Supplier, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) Save(ctx context.Context, supplier *partner.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *mockSupplierRepo) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *mockSupplierRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSupplierRepo) ExistsByEmail(ctx context.Context, tenantID uuid.UUID, email valueobject.Email) (bool, error) {
	args := m.Called(ctx, tenantID, email)
	return args.Bool(0), args.Error(1)
}

type mockLedgerRepo struct{ mock.Mock }

func (m *mockLedgerRepo) Save(ctx context.Context, entry *ledger.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockLedgerRepo) FindByEntity(ctx context.Context, tenantID uuid.UUID, entityType ledger.EntityType, entityID uuid.UUID, filter shared.Filter) ([]ledger.Entry, error) {
	args := m.Called(ctx, tenantID, entityType, entityID, filter)
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

func (m *mockLedgerRepo) CountByEntity(ctx context.Context, tenantID uuid.UUID, entityType ledger.EntityType, entityID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, entityType, entityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLedgerRepo) CalculateEntityBalance(ctx context.Context, tenantID uuid.UUID, entityType ledger.EntityType, entityID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, entityType, entityID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func TestSupplierService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates a supplier", func(t *testing.T) {
		repo := new(mockSupplierRepo)
		repo.On("ExistsByEmail", mock.Anything, tenantID, mock.Anything).Return(false, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := NewSupplierService(repo, new(mockLedgerRepo), nil)
		resp, err := svc.Create(context.Background(), tenantID, CreateSupplierRequest{
			Name:  "Fresh Produce Co",
			Email: "Sales@Fresh.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "sales@fresh.com", resp.Email)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(mockSupplierRepo)
		repo.On("ExistsByEmail", mock.Anything, tenantID, mock.Anything).Return(true, nil)

		svc := NewSupplierService(repo, new(mockLedgerRepo), nil)
		_, err := svc.Create(context.Background(), tenantID, CreateSupplierRequest{
			Name:  "Fresh Produce Co",
			Email: "sales@fresh.com",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeDuplicateEmail, domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed email before hitting the repository", func(t *testing.T) {
		repo := new(mockSupplierRepo)
		svc := NewSupplierService(repo, new(mockLedgerRepo), nil)
		_, err := svc.Create(context.Background(), tenantID, CreateSupplierRequest{
			Name:  "Fresh Produce Co",
			Email: "not-an-email",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSupplierService_Delete(t *testing.T) {
	tenantID := uuid.New()

	newSupplier := func() *partner.Supplier {
		s, err := partner.NewSupplier(tenantID, "Fresh Produce Co", "sales@fresh.com", "")
		require.NoError(t, err)
		return s
	}

	t.Run("deletes a supplier with zero balance", func(t *testing.T) {
		supplier := newSupplier()
		repo := new(mockSupplierRepo)
		ledgerRepo := new(mockLedgerRepo)
		repo.On("FindByIDForTenant", mock.Anything, tenantID, supplier.ID).Return(supplier, nil)
		ledgerRepo.On("CalculateEntityBalance", mock.Anything, tenantID, ledger.EntitySupplier, supplier.ID).Return(decimal.Zero, nil)
		repo.On("DeleteForTenant", mock.Anything, tenantID, supplier.ID).Return(nil)

		svc := NewSupplierService(repo, ledgerRepo, nil)
		require.NoError(t, svc.Delete(context.Background(), tenantID, supplier.ID))
		repo.AssertExpectations(t)
	})

	t.Run("refuses deletion with nonzero balance", func(t *testing.T) {
		supplier := newSupplier()
		repo := new(mockSupplierRepo)
		ledgerRepo := new(mockLedgerRepo)
		repo.On("FindByIDForTenant", mock.Anything, tenantID, supplier.ID).Return(supplier, nil)
		ledgerRepo.On("CalculateEntityBalance", mock.Anything, tenantID, ledger.EntitySupplier, supplier.ID).Return(decimal.NewFromInt(-120), nil)

		svc := NewSupplierService(repo, ledgerRepo, nil)
		err := svc.Delete(context.Background(), tenantID, supplier.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeCannotDeleteWithBalance, domainErr.Code)
		repo.AssertNotCalled(t, "DeleteForTenant", mock.Anything, mock.Anything, mock.Anything)
	})
}
