package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// ProductService handles catalog management
type ProductService struct {
	productRepo catalog.ProductRepository
	publisher   shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, publisher shared.EventPublisher) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, tenantID, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_SKU", "Product with this SKU already exists")
	}

	unitPrice, err := valueobject.NewMoney(req.UnitPrice, valueobject.USD)
	if err != nil {
		return nil, err
	}
	costPrice, err := valueobject.NewMoney(req.CostPrice, valueobject.USD)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(tenantID, req.SKU, req.Name, unitPrice, costPrice)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	if err := product.SetLowStockThreshold(req.LowStockThreshold); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	return ToProductResponse(product), nil
}

// Update updates a product's display fields
func (s *ProductService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	return ToProductResponse(product), nil
}

// SetPricing reprices a product
func (s *ProductService) SetPricing(ctx context.Context, tenantID, id uuid.UUID, req SetPricingRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	unitPrice, err := valueobject.NewMoney(req.UnitPrice, valueobject.USD)
	if err != nil {
		return nil, err
	}
	costPrice, err := valueobject.NewMoney(req.CostPrice, valueobject.USD)
	if err != nil {
		return nil, err
	}

	product.SetPricing(unitPrice, costPrice)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	return ToProductResponse(product), nil
}

// Deactivate takes a product off sale
func (s *ProductService) Deactivate(ctx context.Context, tenantID, id uuid.UUID) error {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}

	product.Deactivate()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return err
	}

	s.publishEvents(ctx, product)

	return nil
}

// GetByID fetches one product
func (s *ProductService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List returns a page of products for a tenant
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.publisher == nil {
		return
	}
	events := product.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	product.ClearDomainEvents()
}
