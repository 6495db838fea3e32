package inventory

// StockSnapshot is the candidate shape for stock-level specifications
type StockSnapshot struct {
	CurrentStock      int
	LowStockThreshold int
	RequiredQuantity  int
}

// ProductIsLowStockSpecification is satisfied when stock is at or below
// the product's low-stock threshold
type ProductIsLowStockSpecification struct{}

// NewProductIsLowStockSpecification creates the specification
func NewProductIsLowStockSpecification() *ProductIsLowStockSpecification {
	return &ProductIsLowStockSpecification{}
}

// IsSatisfiedBy evaluates the low-stock predicate
func (s *ProductIsLowStockSpecification) IsSatisfiedBy(candidate StockSnapshot) bool {
	return candidate.CurrentStock <= candidate.LowStockThreshold
}

// StockIsSufficientSpecification is satisfied when current stock covers
// the required quantity
type StockIsSufficientSpecification struct{}

// NewStockIsSufficientSpecification creates the specification
func NewStockIsSufficientSpecification() *StockIsSufficientSpecification {
	return &StockIsSufficientSpecification{}
}

// IsSatisfiedBy evaluates the sufficiency predicate
func (s *StockIsSufficientSpecification) IsSatisfiedBy(candidate StockSnapshot) bool {
	return candidate.CurrentStock >= candidate.RequiredQuantity
}
