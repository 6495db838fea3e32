package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/ledger"
	"github.com/storekit/backend/internal/domain/partner"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	ledgerRepo   ledger.EntryRepository
	publisher    shared.EventPublisher
	standing     *partner.CustomerIsInGoodStandingSpecification
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, ledgerRepo ledger.EntryRepository, publisher shared.EventPublisher) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
		publisher:    publisher,
		standing:     partner.NewCustomerIsInGoodStandingSpecification(),
	}
}

// Create creates a new customer. Same email pre-check semantics as
// SupplierService.Create.
func (s *CustomerService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByEmail(ctx, tenantID, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeDuplicateEmail, "Customer with this email already exists")
	}

	limit := decimal.Zero
	if req.CreditLimit != nil {
		limit = *req.CreditLimit
	}
	creditLimit, err := valueobject.NewMoney(limit, valueobject.USD)
	if err != nil {
		return nil, err
	}

	customer, err := partner.NewCustomer(tenantID, req.Name, req.Email, req.Phone, creditLimit)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, customer)

	return s.toResponse(customer), nil
}

// Update updates a customer's details
func (s *CustomerService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if !customer.Email.Equals(email) {
		exists, err := s.customerRepo.ExistsByEmail(ctx, tenantID, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError(shared.CodeDuplicateEmail, "Customer with this email already exists")
		}
	}

	if err := customer.Update(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, customer)

	return s.toResponse(customer), nil
}

// Delete removes a customer unless they carry a nonzero ledger balance
func (s *CustomerService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, id); err != nil {
		return err
	}

	balance, err := s.ledgerRepo.CalculateEntityBalance(ctx, tenantID, ledger.EntityCustomer, id)
	if err != nil {
		return err
	}
	if !balance.IsZero() {
		return shared.NewDomainError(shared.CodeCannotDeleteWithBalance, "Cannot delete customer with outstanding balance")
	}

	return s.customerRepo.DeleteForTenant(ctx, tenantID, id)
}

// GetByID fetches one customer
func (s *CustomerService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(customer), nil
}

// List returns a page of customers for a tenant
func (s *CustomerService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[CustomerResponse], error) {
	customers, err := s.customerRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *s.toResponse(&customers[i])
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

// RecordPayment registers a payment against the customer and settles
// the outstanding flag when the ledger balance reaches zero or better
func (s *CustomerService) RecordPayment(ctx context.Context, tenantID, id uuid.UUID, amount valueobject.Money, reference string) error {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}

	entry, err := ledger.NewEntry(tenantID, ledger.EntityCustomer, id, ledger.EntryCredit, amount, "payment received", reference)
	if err != nil {
		return err
	}
	if err := s.ledgerRepo.Save(ctx, entry); err != nil {
		return err
	}

	customer.RecordPayment(entry.CreatedAt)

	balance, err := s.ledgerRepo.CalculateEntityBalance(ctx, tenantID, ledger.EntityCustomer, id)
	if err != nil {
		return err
	}
	if balance.IsNegative() {
		customer.MarkOutstanding()
	} else {
		customer.MarkSettled()
	}

	return s.customerRepo.Save(ctx, customer)
}

// GetBalance computes the customer's ledger balance
func (s *CustomerService) GetBalance(ctx context.Context, tenantID, id uuid.UUID) (*BalanceResponse, error) {
	balance, err := s.ledgerRepo.CalculateEntityBalance(ctx, tenantID, ledger.EntityCustomer, id)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{EntityID: id, Balance: balance}, nil
}

func (s *CustomerService) toResponse(customer *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:                    customer.ID,
		Name:                  customer.Name,
		Email:                 customer.Email.String(),
		Phone:                 customer.Phone,
		Address:               customer.Address,
		CreditLimit:           customer.CreditLimit.Amount(),
		HasOutstandingBalance: customer.HasOutstandingBalance,
		LastPaymentDate:       customer.LastPaymentDate,
		InGoodStanding: s.standing.IsSatisfiedBy(partner.CustomerStanding{
			HasOutstandingBalance: customer.HasOutstandingBalance,
			LastPaymentDate:       customer.LastPaymentDate,
		}),
		Active:    customer.Active,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

func (s *CustomerService) publishEvents(ctx context.Context, customer *partner.Customer) {
	if s.publisher == nil {
		return
	}
	events := customer.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	customer.ClearDomainEvents()
}
