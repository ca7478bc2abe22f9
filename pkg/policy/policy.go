// Package policy contains the betting personalities a bettor can follow.
package policy

import (
	"github.com/shopspring/decimal"
)

// Policy decides how much a bettor wagers and reacts to how each game went.
// A Policy is owned by exactly one bettor.
type Policy interface {
	// Name returns the name of the policy
	Name() string

	// BetSize returns the bet for the given funds
	// The result is always within [0, funds]
	BetSize(funds decimal.Decimal) decimal.Decimal

	// OnSettled is called once per resolved game with the net change that was
	// just applied to the bettor's funds
	OnSettled(delta decimal.Decimal)

	// Target returns the amount at which the bettor leaves happy
	Target(startingFunds decimal.Decimal) decimal.Decimal
}
