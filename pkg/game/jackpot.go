package game

import (
	"github.com/shopspring/decimal"
)

// Jackpot is a progressive pool that is held apart from the house profit
type Jackpot struct {
	start   decimal.Decimal
	current decimal.Decimal
}

// NewJackpot returns a pool seeded with start
func NewJackpot(start decimal.Decimal) *Jackpot {
	return &Jackpot{
		start:   start,
		current: start,
	}
}

// Start returns the value the pool resets to
func (j *Jackpot) Start() decimal.Decimal {
	return j.start
}

// Current returns the value of the pool
func (j *Jackpot) Current() decimal.Decimal {
	return j.current
}

// Contribute grows the pool
func (j *Jackpot) Contribute(amount decimal.Decimal) {
	j.current = j.current.Add(amount)
}

// Claim returns the value of the pool and resets it
func (j *Jackpot) Claim() decimal.Decimal {
	won := j.current
	j.current = j.start
	return won
}
