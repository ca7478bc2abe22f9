package policy

import (
	"casino-sim/pkg/money"
	"github.com/shopspring/decimal"
)

// Streak grows its bet after a win and shrinks it after a loss
type Streak struct {
	currentBet     decimal.Decimal
	minBet         decimal.Decimal
	winMultiplier  decimal.Decimal
	loseMultiplier decimal.Decimal
	target         decimal.Decimal
}

// StreakOptions configure a Streak policy
type StreakOptions struct {
	StartBet       decimal.Decimal
	MinBet         decimal.Decimal
	WinMultiplier  decimal.Decimal
	LoseMultiplier decimal.Decimal
	// Target is absolute, it is not derived from the starting funds
	Target decimal.Decimal
}

// NewStreak returns a new Streak policy
func NewStreak(opts StreakOptions) *Streak {
	return &Streak{
		currentBet:     opts.StartBet,
		minBet:         opts.MinBet,
		winMultiplier:  opts.WinMultiplier,
		loseMultiplier: opts.LoseMultiplier,
		target:         opts.Target,
	}
}

// Name returns the name of the policy
func (s *Streak) Name() string {
	return "streak"
}

// CurrentBet returns the bet the streak is currently riding
func (s *Streak) CurrentBet() decimal.Decimal {
	return s.currentBet
}

// BetSize returns everything when the streak bet can't be covered, or when
// funds are below the minimum bet
func (s *Streak) BetSize(funds decimal.Decimal) decimal.Decimal {
	if s.currentBet.GreaterThan(funds) || funds.LessThan(s.minBet) {
		return money.Clamp(funds, funds)
	}

	return money.Clamp(s.currentBet, funds)
}

// OnSettled multiplies the bet by the win or lose multiplier
// The bet never drops below the minimum bet after a loss
func (s *Streak) OnSettled(delta decimal.Decimal) {
	if delta.IsPositive() {
		s.currentBet = s.currentBet.Mul(s.winMultiplier)
		return
	}

	s.currentBet = money.Max(s.currentBet.Mul(s.loseMultiplier), s.minBet)
}

// Target returns the configured absolute target
func (s *Streak) Target(decimal.Decimal) decimal.Decimal {
	return s.target
}
