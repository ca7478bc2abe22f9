package game

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNilBettor is returned when the book contains a nil bettor
var ErrNilBettor = errors.New("book contains a nil bettor")

// ErrDuplicateWinner is returned when rules report the same winner twice
var ErrDuplicateWinner = errors.New("rules returned a winner more than once")

// ErrUnsupportedVariant is returned when a variant can neither pick winners nor resolve a book
var ErrUnsupportedVariant = errors.New("variant must implement Rules or Resolver")

// ErrNilLedger is returned when a game is created without a ledger
var ErrNilLedger = errors.New("game requires a ledger")

// NegativeBetError is returned when a bet in the book is < 0
type NegativeBetError struct {
	Bettor string
	Bet    decimal.Decimal
}

func (n NegativeBetError) Error() string {
	return fmt.Sprintf("bettor %s has a negative bet: %s", n.Bettor, n.Bet)
}

// UnknownWinnerError is returned when rules pick a winner who isn't in the book
type UnknownWinnerError struct {
	Game   string
	Bettor string
}

func (u UnknownWinnerError) Error() string {
	return fmt.Sprintf("%s picked %s as a winner, but they did not play", u.Game, u.Bettor)
}

// UnknownGameError is returned when no game exists with the given key
type UnknownGameError string

func (u UnknownGameError) Error() string {
	return fmt.Sprintf("no game with key: %s", string(u))
}
