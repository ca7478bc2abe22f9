package policy

import (
	"casino-sim/pkg/money"
	"github.com/shopspring/decimal"
)

var stableTargetMultiplier = decimal.NewFromInt(2)

// Stable always bets the same amount
type Stable struct {
	bet decimal.Decimal
}

// NewStable returns a policy that bets bet every game
func NewStable(bet decimal.Decimal) *Stable {
	return &Stable{bet: bet}
}

// Name returns the name of the policy
func (s *Stable) Name() string {
	return "stable"
}

// BetSize returns the fixed bet, limited to the available funds
func (s *Stable) BetSize(funds decimal.Decimal) decimal.Decimal {
	return money.Clamp(s.bet, funds)
}

// OnSettled is a no-op
func (s *Stable) OnSettled(decimal.Decimal) {
	// noop
}

// Target is twice the starting funds
func (s *Stable) Target(startingFunds decimal.Decimal) decimal.Decimal {
	return startingFunds.Mul(stableTargetMultiplier)
}
