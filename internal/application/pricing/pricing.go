// Package pricing provides stateless price computations. The functions
// are free functions on purpose: they hold no repository state and can
// be called from any service or handler.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// ApplyDiscount returns the price reduced by the given percentage.
// Percent outside [0,100] fails with INVALID_DISCOUNT.
func ApplyDiscount(price valueobject.Money, percent decimal.Decimal) (valueobject.Money, error) {
	discounted, err := price.ApplyDiscount(percent)
	if err != nil {
		return valueobject.Money{}, err
	}
	return discounted.Round(2), nil
}

// Margin returns sale minus cost as a signed decimal. Negative when
// selling below cost.
func Margin(cost, sale valueobject.Money) (decimal.Decimal, error) {
	if cost.Currency() != sale.Currency() {
		return decimal.Zero, shared.NewDomainError("CURRENCY_MISMATCH", "Cannot compute margin across currencies")
	}
	return sale.Amount().Sub(cost.Amount()), nil
}

// MarginPercent returns the margin as a fraction of the sale price,
// rounded to 4 places. Zero sale price yields zero.
func MarginPercent(cost, sale valueobject.Money) (decimal.Decimal, error) {
	margin, err := Margin(cost, sale)
	if err != nil {
		return decimal.Zero, err
	}
	if sale.Amount().IsZero() {
		return decimal.Zero, nil
	}
	return margin.Div(sale.Amount()).Round(4), nil
}

// MarkupPrice returns cost increased by the given percentage markup.
// Percent must be non-negative.
func MarkupPrice(cost valueobject.Money, percent decimal.Decimal) (valueobject.Money, error) {
	if percent.IsNegative() {
		return valueobject.Money{}, shared.NewDomainError(shared.CodeInvalidFactor, "Markup percentage cannot be negative")
	}
	markup, err := cost.Percentage(percent)
	if err != nil {
		return valueobject.Money{}, err
	}
	marked, err := cost.Add(markup)
	if err != nil {
		return valueobject.Money{}, err
	}
	return marked.Round(2), nil
}
