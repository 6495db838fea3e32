package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/inventory"
	"github.com/storekit/backend/internal/domain/ledger"
	"github.com/storekit/backend/internal/domain/partner"
	"github.com/storekit/backend/internal/domain/sales"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// DefaultTaxRate is applied when a sale request does not carry one
var DefaultTaxRate = decimal.NewFromFloat(0.16)

// SalesService handles sale computations and the sale creation flow
type SalesService struct {
	saleRepo      sales.SaleRepository
	productRepo   catalog.ProductRepository
	inventoryRepo inventory.InventoryRepository
	ledgerRepo    ledger.EntryRepository
	customerRepo  partner.CustomerRepository
	tx            shared.TransactionManager
	publisher     shared.EventPublisher
	stockSpec     shared.Specification[inventory.StockSnapshot]
}

// NewSalesService creates a new SalesService
func NewSalesService(
	saleRepo sales.SaleRepository,
	productRepo catalog.ProductRepository,
	inventoryRepo inventory.InventoryRepository,
	ledgerRepo ledger.EntryRepository,
	customerRepo partner.CustomerRepository,
	tx shared.TransactionManager,
	publisher shared.EventPublisher,
) *SalesService {
	return &SalesService{
		saleRepo:      saleRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		ledgerRepo:    ledgerRepo,
		customerRepo:  customerRepo,
		tx:            tx,
		publisher:     publisher,
		stockSpec:     inventory.NewStockIsSufficientSpecification(),
	}
}

// CalculateSaleTotal computes subtotal, tax, and total for a list of
// items. Pass DefaultTaxRate when the caller has no explicit rate.
func CalculateSaleTotal(items []SaleItemInput, taxRate decimal.Decimal) SaleTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	tax := subtotal.Mul(taxRate)
	return SaleTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// ValidateSale checks a sale request and accumulates every violation
// rather than stopping at the first. It never returns an error: an
// invalid request is a normal evaluation outcome.
func ValidateSale(items []SaleItemInput) ValidationResult {
	var errs []string

	if len(items) == 0 {
		errs = append(errs, "Sale must have at least one item")
	}

	for i, item := range items {
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: quantity must be greater than zero", i+1))
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, fmt.Sprintf("Item %d: unit price cannot be negative", i+1))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// CalculateCommission returns the commission on a total at the given
// rate. Rates outside [0,1] fail with INVALID_COMMISSION_RATE.
func CalculateCommission(total valueobject.Money, rate decimal.Decimal) (valueobject.Money, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return valueobject.Money{}, shared.NewDomainError(shared.CodeInvalidCommissionRate, "Commission rate must be between 0 and 1")
	}
	commission, err := total.Multiply(rate)
	if err != nil {
		return valueobject.Money{}, err
	}
	return commission.Round(2), nil
}

// Create runs the full sale creation flow: validates the request,
// checks stock sufficiency per line, records the sale with its outgoing
// movements, posts a ledger debit for credit sales, and publishes the
// aggregate's events.
func (s *SalesService) Create(ctx context.Context, tenantID, cashierID uuid.UUID, req CreateSaleRequest) (*SaleResponse, error) {
	if result := ValidateSale(req.Items); !result.IsValid {
		return nil, shared.NewDomainError("VALIDATION_FAILED", strings.Join(result.Errors, "; "))
	}

	payment := sales.PaymentMethod(req.Payment)
	if !payment.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	if payment == sales.PaymentCredit && req.CustomerID == nil {
		return nil, shared.NewDomainError("CUSTOMER_REQUIRED", "Credit sales require a customer")
	}

	productIDs := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindByIDs(ctx, tenantID, productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	lineItems := make([]sales.SaleLineItem, 0, len(req.Items))
	inventories := make(map[uuid.UUID]*inventory.ProductInventory, len(req.Items))
	for _, item := range req.Items {
		product, ok := productByID[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", fmt.Sprintf("Product %s does not exist", item.ProductID))
		}
		if !product.Active {
			return nil, shared.NewDomainError("PRODUCT_INACTIVE", fmt.Sprintf("Product %s is not for sale", product.SKU))
		}

		inv, err := s.inventoryRepo.FindByProduct(ctx, tenantID, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !s.stockSpec.IsSatisfiedBy(inventory.StockSnapshot{
			CurrentStock:     inv.CurrentStock,
			RequiredQuantity: item.Quantity,
		}) {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK", fmt.Sprintf("Not enough stock for %s", product.SKU))
		}
		inventories[item.ProductID] = inv

		lineItem, err := sales.NewSaleLineItem(product.ID, product.SKU, product.Name, item.Quantity, product.UnitPrice)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}

	currency := lineItems[0].UnitPrice.Currency()
	subtotal, err := valueobject.NewMoney(decimal.Zero, currency)
	if err != nil {
		return nil, err
	}
	for _, item := range lineItems {
		subtotal, err = subtotal.Add(item.TotalPrice)
		if err != nil {
			return nil, err
		}
	}
	taxRate := DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	tax, err := subtotal.Multiply(taxRate)
	if err != nil {
		return nil, err
	}
	total, err := subtotal.Add(tax)
	if err != nil {
		return nil, err
	}

	// The sale, its outgoing movements, the ledger debit, and the
	// customer flag commit or roll back as one unit. Events go out
	// only after the commit.
	var sale *sales.Sale
	var pending []shared.DomainEvent
	err = s.tx.Transact(ctx, func(txCtx context.Context) error {
		number, err := s.saleRepo.NextNumber(txCtx, tenantID)
		if err != nil {
			return err
		}

		sale, err = sales.NewSale(tenantID, number, cashierID, req.CustomerID, lineItems, subtotal.Round(2), tax.Round(2), total.Round(2))
		if err != nil {
			return err
		}
		if err := sale.Complete(payment); err != nil {
			return err
		}
		if err := s.saleRepo.Save(txCtx, sale); err != nil {
			return err
		}

		for _, item := range sale.Items {
			movement, err := inventory.NewMovement(tenantID, item.ProductID, inventory.MovementOut, item.Quantity, "sale", sale.Number)
			if err != nil {
				return err
			}
			next, err := inventories[item.ProductID].ApplyMovement(movement)
			if err != nil {
				return err
			}
			if err := s.inventoryRepo.SaveMovement(txCtx, movement, next.CurrentStock); err != nil {
				return err
			}
			pending = append(pending, next.GetDomainEvents()...)
			next.ClearDomainEvents()
		}

		if payment == sales.PaymentCredit {
			entry, err := ledger.NewEntry(tenantID, ledger.EntityCustomer, *req.CustomerID, ledger.EntryDebit, sale.Total, "credit sale", sale.Number)
			if err != nil {
				return err
			}
			if err := s.ledgerRepo.Save(txCtx, entry); err != nil {
				return err
			}

			customer, err := s.customerRepo.FindByIDForTenant(txCtx, tenantID, *req.CustomerID)
			if err != nil {
				return err
			}
			customer.MarkOutstanding()
			if err := s.customerRepo.Save(txCtx, customer); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, pending)
	s.publishEvents(ctx, sale.GetDomainEvents())
	sale.ClearDomainEvents()

	return ToSaleResponse(sale), nil
}

// GetByID fetches one sale
func (s *SalesService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// List returns a page of sales for a tenant
func (s *SalesService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[SaleResponse], error) {
	items, err := s.saleRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.saleRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SaleResponse, len(items))
	for i := range items {
		responses[i] = *ToSaleResponse(&items[i])
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Cancel voids a draft sale
func (s *SalesService) Cancel(ctx context.Context, tenantID, id uuid.UUID, reason string) error {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := sale.Cancel(reason); err != nil {
		return err
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return err
	}
	s.publishEvents(ctx, sale.GetDomainEvents())
	sale.ClearDomainEvents()
	return nil
}

// publishEvents forwards events to the bus. Delivery failures do not
// roll back an already-saved aggregate.
func (s *SalesService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
}
