package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/inventory"
	"github.com/storekit/backend/internal/domain/shared"
)

// recentMovementDays bounds the movement list in stock summaries
const recentMovementDays = 30

// InventoryService handles stock movements and stock queries
type InventoryService struct {
	inventoryRepo inventory.InventoryRepository
	productRepo   catalog.ProductRepository
	publisher     shared.EventPublisher
	lowStockSpec  shared.Specification[inventory.StockSnapshot]
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(inventoryRepo inventory.InventoryRepository, productRepo catalog.ProductRepository, publisher shared.EventPublisher) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		publisher:     publisher,
		lowStockSpec:  inventory.NewProductIsLowStockSpecification(),
	}
}

// RecordMovement applies one stock movement to a product and persists
// the resulting stock level
func (s *InventoryService) RecordMovement(ctx context.Context, tenantID uuid.UUID, req RecordMovementRequest) (*StockResponse, error) {
	if _, err := s.productRepo.FindByIDForTenant(ctx, tenantID, req.ProductID); err != nil {
		return nil, err
	}

	movement, err := inventory.NewMovement(tenantID, req.ProductID, inventory.MovementType(req.Type), req.Quantity, req.Reason, req.Reference)
	if err != nil {
		return nil, err
	}

	current, err := s.inventoryRepo.FindByProduct(ctx, tenantID, req.ProductID)
	if err != nil {
		return nil, err
	}

	next, err := current.ApplyMovement(movement)
	if err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.SaveMovement(ctx, movement, next.CurrentStock); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, next.GetDomainEvents()...)
		next.ClearDomainEvents()
	}

	return &StockResponse{
		ProductID:    req.ProductID,
		CurrentStock: next.CurrentStock,
		InStock:      next.IsInStock(),
		UpdatedAt:    next.LastUpdated,
	}, nil
}

// GetStockSummary returns the detailed inventory view for one product
func (s *InventoryService) GetStockSummary(ctx context.Context, tenantID, productID uuid.UUID) (*StockSummaryResponse, error) {
	inv, err := s.inventoryRepo.FindByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	recent := inv.RecentMovements(recentMovementDays)
	movements := make([]MovementResponse, len(recent))
	for i, m := range recent {
		movements[i] = ToMovementResponse(m)
	}

	return &StockSummaryResponse{
		ProductID:       productID,
		CurrentStock:    inv.CurrentStock,
		InStock:         inv.IsInStock(),
		TotalIncoming:   inv.TotalIncoming(),
		TotalOutgoing:   inv.TotalOutgoing(),
		RecentMovements: movements,
		LastUpdated:     inv.LastUpdated,
	}, nil
}

// ListMovements lists movements for a product
func (s *InventoryService) ListMovements(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]MovementResponse, error) {
	movements, err := s.inventoryRepo.FindMovements(ctx, tenantID, productID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]MovementResponse, len(movements))
	for i, m := range movements {
		responses[i] = ToMovementResponse(m)
	}
	return responses, nil
}

// ListLowStock returns products whose stock is at or below their
// configured threshold
func (s *InventoryService) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]StockResponse, error) {
	levels, err := s.inventoryRepo.FindStockLevels(ctx, tenantID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return []StockResponse{}, nil
	}

	ids := make([]uuid.UUID, len(levels))
	for i, level := range levels {
		ids[i] = level.ProductID
	}
	products, err := s.productRepo.FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	thresholds := make(map[uuid.UUID]int, len(products))
	for i := range products {
		thresholds[products[i].ID] = products[i].LowStockThreshold
	}

	low := make([]StockResponse, 0)
	for _, level := range levels {
		threshold, ok := thresholds[level.ProductID]
		if !ok {
			continue
		}
		if s.lowStockSpec.IsSatisfiedBy(inventory.StockSnapshot{
			CurrentStock:      level.CurrentStock,
			LowStockThreshold: threshold,
		}) {
			low = append(low, StockResponse{
				ProductID:    level.ProductID,
				CurrentStock: level.CurrentStock,
				InStock:      level.CurrentStock > 0,
				UpdatedAt:    level.UpdatedAt,
			})
		}
	}
	return low, nil
}
