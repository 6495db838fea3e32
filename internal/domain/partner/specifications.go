package partner

import (
	"time"

	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// goodStandingPaymentWindow is how recently a customer with an
// outstanding balance must have paid to still count as in good standing.
const goodStandingPaymentWindow = 90 * 24 * time.Hour

// CustomerStanding is the candidate shape evaluated for good standing
type CustomerStanding struct {
	HasOutstandingBalance bool
	LastPaymentDate       *time.Time
}

// CustomerIsInGoodStandingSpecification is satisfied when a customer
// either owes nothing, or owes but has paid within the last 90 days.
// An outstanding balance with no payment on record fails closed.
type CustomerIsInGoodStandingSpecification struct {
	now func() time.Time
}

// NewCustomerIsInGoodStandingSpecification creates the specification
func NewCustomerIsInGoodStandingSpecification() *CustomerIsInGoodStandingSpecification {
	return &CustomerIsInGoodStandingSpecification{now: time.Now}
}

// IsSatisfiedBy evaluates the good-standing predicate
func (s *CustomerIsInGoodStandingSpecification) IsSatisfiedBy(candidate CustomerStanding) bool {
	if !candidate.HasOutstandingBalance {
		return true
	}
	if candidate.LastPaymentDate == nil {
		return false
	}
	return s.now().Sub(*candidate.LastPaymentDate) <= goodStandingPaymentWindow
}

// CreditCheck is the candidate shape evaluated against a credit limit
type CreditCheck struct {
	CurrentBalance valueobject.Money
	ProposedCharge valueobject.Money
	CreditLimit    valueobject.Money
}

// CustomerWithinCreditLimitSpecification is satisfied when the current
// balance plus the proposed charge does not exceed the credit limit.
// Mixed currencies fail the check rather than guessing a conversion.
type CustomerWithinCreditLimitSpecification struct{}

// NewCustomerWithinCreditLimitSpecification creates the specification
func NewCustomerWithinCreditLimitSpecification() *CustomerWithinCreditLimitSpecification {
	return &CustomerWithinCreditLimitSpecification{}
}

// IsSatisfiedBy evaluates the credit-limit predicate
func (s *CustomerWithinCreditLimitSpecification) IsSatisfiedBy(candidate CreditCheck) bool {
	projected, err := candidate.CurrentBalance.Add(candidate.ProposedCharge)
	if err != nil {
		return false
	}
	over, err := projected.GreaterThan(candidate.CreditLimit)
	if err != nil {
		return false
	}
	return !over
}
