package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/shared"
)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *mockProductRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error) {
	args := m.Called(ctx, tenantID, sku)
	return args.Bool(0), args.Error(1)
}

func TestProductService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates a product", func(t *testing.T) {
		repo := new(mockProductRepo)
		repo.On("ExistsBySKU", mock.Anything, tenantID, "sku-001").Return(false, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := NewProductService(repo, nil)
		resp, err := svc.Create(context.Background(), tenantID, CreateProductRequest{
			SKU:               "sku-001",
			Name:              "Espresso Beans",
			UnitPrice:         decimal.NewFromFloat(12.50),
			CostPrice:         decimal.NewFromFloat(7.00),
			LowStockThreshold: 10,
		})
		require.NoError(t, err)

		assert.Equal(t, "SKU-001", resp.SKU)
		assert.True(t, resp.Margin.Equal(decimal.NewFromFloat(5.5)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		repo := new(mockProductRepo)
		repo.On("ExistsBySKU", mock.Anything, tenantID, "SKU-001").Return(true, nil)

		svc := NewProductService(repo, nil)
		_, err := svc.Create(context.Background(), tenantID, CreateProductRequest{
			SKU:  "SKU-001",
			Name: "Espresso Beans",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		repo := new(mockProductRepo)
		repo.On("ExistsBySKU", mock.Anything, tenantID, "SKU-001").Return(false, nil)

		svc := NewProductService(repo, nil)
		_, err := svc.Create(context.Background(), tenantID, CreateProductRequest{
			SKU:       "SKU-001",
			Name:      "Espresso Beans",
			UnitPrice: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeInvalidAmount, domainErr.Code)
	})
}
