package game

import (
	"casino-sim/pkg/bettor"
	"github.com/shopspring/decimal"
)

// Ledger receives the house's side of every settlement
type Ledger interface {
	// AddProfit adds amount to the house profit. A negative amount is a loss.
	AddProfit(amount decimal.Decimal)
}

// Variant is a game the house can offer
type Variant interface {
	// Name returns the display name of the game
	Name() string

	// Key returns a unique key
	Key() string
}

// Rules is a variant that only decides who won and how much they are paid.
// Money is moved by Settle.
type Rules interface {
	Variant

	// DetermineWinners returns the participants who won
	DetermineWinners(participants []*bettor.Bettor) []*bettor.Bettor

	// PayoutMultiplier returns the multiplier applied to the winner's bet
	PayoutMultiplier(winner *bettor.Bettor) decimal.Decimal
}

// Resolver is a variant whose payouts don't fit the net settlement of Settle,
// so it settles the entire book on its own
type Resolver interface {
	Variant

	// Resolve moves all money for the book and returns one outcome per entry
	Resolve(entries []Entry, ledger Ledger) ([]*Outcome, error)
}

// Entry is a single line in the betting book
type Entry struct {
	Bettor *bettor.Bettor  `json:"-"`
	Name   string          `json:"name"`
	Bet    decimal.Decimal `json:"bet"`
}

// Outcome is what happened to a single entry after resolution
type Outcome struct {
	Bettor *bettor.Bettor  `json:"-"`
	Name   string          `json:"name"`
	Bet    decimal.Decimal `json:"bet"`
	Delta  decimal.Decimal `json:"delta"`
	Won    bool            `json:"won"`
	Detail string          `json:"detail,omitempty"`
}
