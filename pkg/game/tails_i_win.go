package game

import (
	"casino-sim/internal/rng"
	"casino-sim/pkg/bettor"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var tailsIWinMultiplier = decimal.NewFromFloat(0.9)

// TailsIWin flips a single coin for the whole table
// Heads, everyone wins. Tails, everyone loses.
type TailsIWin struct {
	logger logrus.FieldLogger
	rng    rng.Generator
}

// NewTailsIWin returns a new game of Tails I Win
func NewTailsIWin(logger logrus.FieldLogger, gen rng.Generator) *TailsIWin {
	return &TailsIWin{
		logger: logger,
		rng:    gen,
	}
}

// Name returns the name of the game
func (t *TailsIWin) Name() string {
	return "Tails I Win"
}

// Key returns a unique key
func (t *TailsIWin) Key() string {
	return KeyTailsIWin
}

// DetermineWinners flips the coin
func (t *TailsIWin) DetermineWinners(participants []*bettor.Bettor) []*bettor.Bettor {
	if t.rng.Intn(2) == 1 {
		t.logger.WithField("coin", "heads").Info("coin was heads")
		return append([]*bettor.Bettor(nil), participants...)
	}

	t.logger.WithField("coin", "tails").Info("coin was tails")
	return nil
}

// PayoutMultiplier is always 0.9
func (t *TailsIWin) PayoutMultiplier(*bettor.Bettor) decimal.Decimal {
	return tailsIWinMultiplier
}
