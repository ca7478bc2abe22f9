// Package money provides helpers around decimal amounts used for funds,
// bets and the house ledger.
package money

import (
	"github.com/shopspring/decimal"
)

// Zero is the zero amount
var Zero = decimal.Zero

// FromFloat returns an amount for the float
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// FromInt returns an amount for the integer
func FromInt(i int64) decimal.Decimal {
	return decimal.NewFromInt(i)
}

// Min returns the smaller of a and b
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}

	return b
}

// Max returns the larger of a and b
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}

	return b
}

// Clamp limits amount to [0, upper]
// If upper is negative, zero is returned
func Clamp(amount, upper decimal.Decimal) decimal.Decimal {
	if upper.IsNegative() {
		return Zero
	}

	return Max(Zero, Min(amount, upper))
}

// Format renders the amount the way the reports show it, e.g. $12.50
func Format(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}

	return "$" + amount.StringFixed(2)
}
