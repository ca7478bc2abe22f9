package policy

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Policy names accepted by New
const (
	NameStable     = "stable"
	NameHighRisk   = "high-risk"
	NameStreak     = "streak"
	NameMartingale = "martingale"
)

// Options describe a policy to build
// Only the fields relevant to Kind are used.
type Options struct {
	Kind string

	// Bet is the stable bet
	Bet decimal.Decimal

	// YoloThreshold is when a high-risk bettor goes all in
	YoloThreshold decimal.Decimal

	// StartBet is the first bet of a streak or martingale bettor
	StartBet       decimal.Decimal
	MinBet         decimal.Decimal
	WinMultiplier  decimal.Decimal
	LoseMultiplier decimal.Decimal

	// Target is the absolute target of a streak bettor
	Target decimal.Decimal
}

// Names returns every policy name New understands
func Names() []string {
	return []string{NameStable, NameHighRisk, NameStreak, NameMartingale}
}

// New builds a policy from the options
func New(opts Options) (Policy, error) {
	switch strings.ToLower(opts.Kind) {
	case NameStable:
		if !opts.Bet.IsPositive() {
			return nil, ErrNonPositiveBet
		}

		return NewStable(opts.Bet), nil
	case NameHighRisk:
		return NewHighRisk(opts.YoloThreshold), nil
	case NameStreak:
		if !opts.StartBet.IsPositive() {
			return nil, ErrNonPositiveBet
		}

		if opts.WinMultiplier.IsNegative() || opts.LoseMultiplier.IsNegative() {
			return nil, ErrNegativeMultiplier
		}

		if !opts.Target.IsPositive() {
			return nil, ErrNonPositiveTarget
		}

		return NewStreak(StreakOptions{
			StartBet:       opts.StartBet,
			MinBet:         opts.MinBet,
			WinMultiplier:  opts.WinMultiplier,
			LoseMultiplier: opts.LoseMultiplier,
			Target:         opts.Target,
		}), nil
	case NameMartingale:
		if !opts.StartBet.IsPositive() {
			return nil, ErrNonPositiveBet
		}

		return NewMartingale(opts.StartBet), nil
	}

	return nil, UnknownPolicyError(opts.Kind)
}
