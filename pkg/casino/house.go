package casino

import (
	"fmt"

	"casino-sim/pkg/bettor"
	"casino-sim/pkg/game"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Options contains options for opening a house
type Options struct {
	MaxRounds int
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		MaxRounds: 5,
	}
}

// Departure records when and why a bettor left
type Departure struct {
	Bettor *bettor.Bettor
	Reason bettor.ExitReason
	Round  int
}

// House runs every game, in order, each round for the bettors still present
type House struct {
	logger   logrus.FieldLogger
	reporter Reporter

	games   []*game.Game
	active  []*bettor.Bettor
	members map[*bettor.Bettor]bool
	left    []*Departure

	profit       decimal.Decimal
	maxRounds    int
	currentRound int
}

// New returns a house with no games or bettors
func New(logger logrus.FieldLogger, opts Options, reporter Reporter) (*House, error) {
	if opts.MaxRounds < 1 {
		return nil, ErrInvalidMaxRounds
	}

	if reporter == nil {
		reporter = NewLogReporter(logger)
	}

	return &House{
		logger:    logger,
		reporter:  reporter,
		members:   make(map[*bettor.Bettor]bool),
		profit:    decimal.Zero,
		maxRounds: opts.MaxRounds,
	}, nil
}

// AddGame adds a variant to the end of the play order
func (h *House) AddGame(variant game.Variant) (*game.Game, error) {
	for _, g := range h.games {
		if g.Key() == variant.Key() {
			return nil, ErrDuplicateGame
		}
	}

	g, err := game.New(h.logger, variant, h)
	if err != nil {
		return nil, fmt.Errorf("could not add %s: %w", variant.Key(), err)
	}

	h.games = append(h.games, g)
	return g, nil
}

// Admit lets a bettor into the house
// A bettor can only be admitted once, even after they leave.
func (h *House) Admit(b *bettor.Bettor) error {
	if h.members[b] {
		return ErrDuplicateBettor
	}

	h.members[b] = true
	h.active = append(h.active, b)
	return nil
}

// AddProfit adds to the house profit. A negative amount is a loss.
func (h *House) AddProfit(amount decimal.Decimal) {
	h.profit = h.profit.Add(amount)
}

// Profit returns the total profit so far
func (h *House) Profit() decimal.Decimal {
	return h.profit
}

// Games returns the games in play order
func (h *House) Games() []*game.Game {
	return append([]*game.Game(nil), h.games...)
}

// Active returns the bettors still in the house
func (h *House) Active() []*bettor.Bettor {
	return append([]*bettor.Bettor(nil), h.active...)
}

// Departures returns every bettor who left, in the order they left
func (h *House) Departures() []*Departure {
	return append([]*Departure(nil), h.left...)
}

// CurrentRound returns the number of rounds played
func (h *House) CurrentRound() int {
	return h.currentRound
}

// IsOver returns true when no more rounds will be played
func (h *House) IsOver() bool {
	return h.currentRound >= h.maxRounds || len(h.active) == 0
}

// Simulate plays rounds until the round cap is reached or everyone has left
func (h *House) Simulate() error {
	for !h.IsOver() {
		if err := h.SimulateOneRound(); err != nil {
			return err
		}
	}

	h.reporter.SimulationEnded(h.Summary())
	return nil
}

// SimulateOneRound plays every game once
// Before each game, bettors who are done leave, then everyone else places a bet.
func (h *House) SimulateOneRound() error {
	round := h.currentRound
	startingProfit := h.profit
	h.reporter.RoundStarted(round)

	for _, g := range h.games {
		h.determineWhoIsStillPlaying(round)

		for _, b := range h.active {
			g.AddBettor(b, b.RequestBetSize())
		}

		h.reporter.BookOpened(g.Name(), g.Entries())

		result, err := g.Resolve()
		if err != nil {
			return fmt.Errorf("round %d, %s: %w", round, g.Name(), err)
		}

		h.reporter.GameResolved(result)
	}

	h.reporter.RoundEnded(round, h.profit.Sub(startingProfit), h.profit)
	h.currentRound++
	return nil
}

// determineWhoIsStillPlaying reports each bettor's balance and sends finished bettors home
func (h *House) determineWhoIsStillPlaying(round int) {
	for _, b := range h.active {
		h.reporter.BettorStatus(round, b)
	}

	finished := lo.Filter(h.active, func(b *bettor.Bettor, _ int) bool {
		return b.IsFinished()
	})

	for _, b := range finished {
		departure := &Departure{
			Bettor: b,
			Reason: b.ExitReason(),
			Round:  round,
		}

		h.left = append(h.left, departure)
		h.reporter.BettorLeft(departure)
	}

	h.active = lo.Reject(h.active, func(b *bettor.Bettor, _ int) bool {
		return b.IsFinished()
	})
}
