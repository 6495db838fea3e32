package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/ledger"
	"github.com/storekit/backend/internal/domain/partner"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	ledgerRepo   ledger.EntryRepository
	publisher    shared.EventPublisher
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, ledgerRepo ledger.EntryRepository, publisher shared.EventPublisher) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		ledgerRepo:   ledgerRepo,
		publisher:    publisher,
	}
}

// Create creates a new supplier. The email check here is a best-effort
// early rejection; the unique index on (tenant, email) is the actual
// uniqueness guarantee.
func (s *SupplierService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	exists, err := s.supplierRepo.ExistsByEmail(ctx, tenantID, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeDuplicateEmail, "Supplier with this email already exists")
	}

	supplier, err := partner.NewSupplier(tenantID, req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, supplier)

	return ToSupplierResponse(supplier), nil
}

// Update updates a supplier's details
func (s *SupplierService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if !supplier.Email.Equals(email) {
		exists, err := s.supplierRepo.ExistsByEmail(ctx, tenantID, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError(shared.CodeDuplicateEmail, "Supplier with this email already exists")
		}
	}

	if err := supplier.Update(req.Name, req.Email, req.Phone, req.Address, req.Notes); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, supplier)

	return ToSupplierResponse(supplier), nil
}

// Delete removes a supplier. Deletion is refused while the supplier
// carries a nonzero ledger balance.
func (s *SupplierService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, id); err != nil {
		return err
	}

	balance, err := s.ledgerRepo.CalculateEntityBalance(ctx, tenantID, ledger.EntitySupplier, id)
	if err != nil {
		return err
	}
	if !balance.IsZero() {
		return shared.NewDomainError(shared.CodeCannotDeleteWithBalance, "Cannot delete supplier with outstanding balance")
	}

	return s.supplierRepo.DeleteForTenant(ctx, tenantID, id)
}

// GetByID fetches one supplier
func (s *SupplierService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// List returns a page of suppliers for a tenant
func (s *SupplierService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[SupplierResponse], error) {
	suppliers, err := s.supplierRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = *ToSupplierResponse(&suppliers[i])
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

// GetBalance computes the supplier's ledger balance
func (s *SupplierService) GetBalance(ctx context.Context, tenantID, id uuid.UUID) (*BalanceResponse, error) {
	balance, err := s.ledgerRepo.CalculateEntityBalance(ctx, tenantID, ledger.EntitySupplier, id)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{EntityID: id, Balance: balance}, nil
}

func (s *SupplierService) publishEvents(ctx context.Context, supplier *partner.Supplier) {
	if s.publisher == nil {
		return
	}
	events := supplier.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	supplier.ClearDomainEvents()
}
