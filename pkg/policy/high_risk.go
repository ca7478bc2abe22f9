package policy

import (
	"casino-sim/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	highRiskTargetMultiplier = decimal.NewFromInt(5)
	two                      = decimal.NewFromInt(2)
)

// HighRisk bets half of everything, and goes all in once funds drop below
// the yolo threshold
type HighRisk struct {
	yoloThreshold decimal.Decimal
}

// NewHighRisk returns a new HighRisk policy
func NewHighRisk(yoloThreshold decimal.Decimal) *HighRisk {
	return &HighRisk{yoloThreshold: yoloThreshold}
}

// Name returns the name of the policy
func (h *HighRisk) Name() string {
	return "high-risk"
}

// BetSize returns all funds below the threshold, otherwise half
func (h *HighRisk) BetSize(funds decimal.Decimal) decimal.Decimal {
	if funds.LessThan(h.yoloThreshold) {
		return money.Clamp(funds, funds)
	}

	return money.Clamp(funds.Div(two), funds)
}

// OnSettled is a no-op
func (h *HighRisk) OnSettled(decimal.Decimal) {
	// noop
}

// Target is five times the starting funds
func (h *HighRisk) Target(startingFunds decimal.Decimal) decimal.Decimal {
	return startingFunds.Mul(highRiskTargetMultiplier)
}
