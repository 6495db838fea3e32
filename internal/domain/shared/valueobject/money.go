package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/shared"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	MXN Currency = "MXN"
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = USD

// Money is a value object representing a non-negative monetary amount.
// It is immutable - all operations return new Money instances. The
// non-negative invariant holds across every operation: constructors
// reject negative amounts and Multiply rejects negative factors, so a
// negative amount can never be produced through the public API.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency.
// Fails with INVALID_AMOUNT if the amount is negative.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, shared.NewDomainError(shared.CodeInvalidAmount, "Amount cannot be negative")
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amount: amount, currency: currency}, nil
}

// NewMoneyFromFloat creates Money from a float64 value
func NewMoneyFromFloat(amount float64, currency Currency) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, shared.NewDomainError(shared.CodeInvalidAmount, fmt.Sprintf("Invalid amount: %s", amount))
	}
	return NewMoney(d, currency)
}

// MustNewMoney creates Money and panics on error. Test helper.
func MustNewMoney(amount decimal.Decimal, currency Currency) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero-value Money in the specified currency
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns a new Money with the sum of both amounts.
// Returns an error if currencies don't match.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, fmt.Errorf("cannot add money with different currencies: %s and %s", m.Currency(), other.Currency())
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.Currency()}, nil
}

// MustAdd adds two Money values, panics if currencies don't match
func (m Money) MustAdd(other Money) Money {
	result, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Multiply returns a new Money scaled by the given factor. The factor
// must be non-negative; modeling a refund or return needs its own
// signed operation on the owning aggregate, not a negative factor here.
// Fails with INVALID_FACTOR otherwise.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, shared.NewDomainError(shared.CodeInvalidFactor, "Multiplication factor cannot be negative")
	}
	return Money{amount: m.amount.Mul(factor), currency: m.Currency()}, nil
}

// MultiplyByInt returns a new Money scaled by a non-negative integer
func (m Money) MultiplyByInt(factor int64) (Money, error) {
	return m.Multiply(decimal.NewFromInt(factor))
}

// Percentage returns the given percentage of this Money.
// Fails with INVALID_FACTOR when percent is negative.
func (m Money) Percentage(percent decimal.Decimal) (Money, error) {
	if percent.IsNegative() {
		return Money{}, shared.NewDomainError(shared.CodeInvalidFactor, "Percentage cannot be negative")
	}
	return Money{
		amount:   m.amount.Mul(percent).Div(decimal.NewFromInt(100)),
		currency: m.Currency(),
	}, nil
}

// ApplyDiscount returns the Money after applying a percentage discount.
// Fails with INVALID_DISCOUNT when the percentage is outside [0, 100].
func (m Money) ApplyDiscount(discountPercent decimal.Decimal) (Money, error) {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return Money{}, shared.NewDomainError(shared.CodeInvalidDiscount, "Discount must be between 0 and 100")
	}
	discount := m.amount.Mul(discountPercent).Div(decimal.NewFromInt(100))
	return Money{amount: m.amount.Sub(discount), currency: m.Currency()}, nil
}

// Round returns a new Money rounded to the specified decimal places
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places), currency: m.Currency()}
}

// Equals returns true if both Money values have the same amount and currency
func (m Money) Equals(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

// LessThan returns true if this Money is less than the other.
// Returns an error if currencies don't match.
func (m Money) LessThan(other Money) (bool, error) {
	if m.Currency() != other.Currency() {
		return false, fmt.Errorf("cannot compare money with different currencies: %s and %s", m.Currency(), other.Currency())
	}
	return m.amount.LessThan(other.amount), nil
}

// GreaterThan returns true if this Money is greater than the other
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.Currency() != other.Currency() {
		return false, fmt.Errorf("cannot compare money with different currencies: %s and %s", m.Currency(), other.Currency())
	}
	return m.amount.GreaterThan(other.amount), nil
}

// String returns the display representation, fixed to 2 decimal places
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.Currency())
}

// Float64 returns the amount as a float64 (may lose precision)
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.amount.String(),
		Currency: m.Currency(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. The non-negative invariant
// is validated during unmarshaling as well.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(v.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	parsed, err := NewMoney(amount, v.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements driver.Valuer for database storage (amount only;
// currency is stored in a separate column where it varies)
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (m *Money) Scan(value any) error {
	if value == nil {
		m.amount = decimal.Zero
		m.currency = DefaultCurrency
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	case float64:
		strVal = decimal.NewFromFloat(v).String()
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}

	amount, err := decimal.NewFromString(strVal)
	if err != nil {
		return fmt.Errorf("invalid decimal value: %w", err)
	}
	m.amount = amount
	if m.currency == "" {
		m.currency = DefaultCurrency
	}
	return nil
}
