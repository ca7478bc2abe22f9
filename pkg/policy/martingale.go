package policy

import (
	"casino-sim/pkg/money"
	"github.com/shopspring/decimal"
)

var martingaleTargetMultiplier = decimal.NewFromInt(5000)

// Martingale doubles its bet after every loss
// A win does not reset the bet.
type Martingale struct {
	betAmount decimal.Decimal
}

// NewMartingale returns a new Martingale policy
func NewMartingale(startBet decimal.Decimal) *Martingale {
	return &Martingale{betAmount: startBet}
}

// Name returns the name of the policy
func (m *Martingale) Name() string {
	return "martingale"
}

// BetAmount returns the current bet before it is limited by funds
func (m *Martingale) BetAmount() decimal.Decimal {
	return m.betAmount
}

// BetSize returns the bet amount, or all funds if they can't cover it
func (m *Martingale) BetSize(funds decimal.Decimal) decimal.Decimal {
	if funds.LessThan(m.betAmount) {
		return money.Clamp(funds, funds)
	}

	return m.betAmount
}

// OnSettled doubles the bet on a loss
func (m *Martingale) OnSettled(delta decimal.Decimal) {
	if delta.IsNegative() {
		m.betAmount = m.betAmount.Mul(two)
	}
}

// Target is 5000 times the starting funds
func (m *Martingale) Target(startingFunds decimal.Decimal) decimal.Decimal {
	return startingFunds.Mul(martingaleTargetMultiplier)
}
