package partner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

func TestCustomerIsInGoodStandingSpecification(t *testing.T) {
	spec := NewCustomerIsInGoodStandingSpecification()

	t.Run("no outstanding balance is always satisfied", func(t *testing.T) {
		assert.True(t, spec.IsSatisfiedBy(CustomerStanding{HasOutstandingBalance: false}))

		old := time.Now().AddDate(-2, 0, 0)
		assert.True(t, spec.IsSatisfiedBy(CustomerStanding{HasOutstandingBalance: false, LastPaymentDate: &old}))
	})

	t.Run("outstanding with no payment on record fails closed", func(t *testing.T) {
		assert.False(t, spec.IsSatisfiedBy(CustomerStanding{HasOutstandingBalance: true}))
	})

	t.Run("outstanding with recent payment is satisfied", func(t *testing.T) {
		recent := time.Now().AddDate(0, 0, -30)
		assert.True(t, spec.IsSatisfiedBy(CustomerStanding{HasOutstandingBalance: true, LastPaymentDate: &recent}))
	})

	t.Run("outstanding with stale payment is not satisfied", func(t *testing.T) {
		stale := time.Now().AddDate(0, 0, -120)
		assert.False(t, spec.IsSatisfiedBy(CustomerStanding{HasOutstandingBalance: true, LastPaymentDate: &stale}))
	})
}

func TestCustomerWithinCreditLimitSpecification(t *testing.T) {
	spec := NewCustomerWithinCreditLimitSpecification()

	usd := func(amount float64) valueobject.Money {
		m, err := valueobject.NewMoneyFromFloat(amount, valueobject.USD)
		require.NoError(t, err)
		return m
	}

	t.Run("charge within limit", func(t *testing.T) {
		assert.True(t, spec.IsSatisfiedBy(CreditCheck{
			CurrentBalance: usd(400),
			ProposedCharge: usd(100),
			CreditLimit:    usd(500),
		}))
	})

	t.Run("charge exceeding limit", func(t *testing.T) {
		assert.False(t, spec.IsSatisfiedBy(CreditCheck{
			CurrentBalance: usd(450),
			ProposedCharge: usd(100),
			CreditLimit:    usd(500),
		}))
	})

	t.Run("currency mismatch fails the check", func(t *testing.T) {
		eur, err := valueobject.NewMoneyFromFloat(100, valueobject.EUR)
		require.NoError(t, err)
		assert.False(t, spec.IsSatisfiedBy(CreditCheck{
			CurrentBalance: usd(0),
			ProposedCharge: eur,
			CreditLimit:    usd(500),
		}))
	})
}
