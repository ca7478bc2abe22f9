package game

import (
	"casino-sim/internal/rng"
	"casino-sim/pkg/bettor"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const guessTheNumberRange = 5

var guessTheNumberMultiplier = decimal.NewFromFloat(3.5)

// GuessTheNumber has the house and each bettor pick a number from 0 to 4
// Bettors who match the house win 3.5x their bet.
type GuessTheNumber struct {
	logger logrus.FieldLogger
	rng    rng.Generator
}

// NewGuessTheNumber returns a new game of Guess the Number
func NewGuessTheNumber(logger logrus.FieldLogger, gen rng.Generator) *GuessTheNumber {
	return &GuessTheNumber{
		logger: logger,
		rng:    gen,
	}
}

// Name returns the name of the game
func (g *GuessTheNumber) Name() string {
	return "Guess the Number"
}

// Key returns a unique key
func (g *GuessTheNumber) Key() string {
	return KeyGuessTheNumber
}

// DetermineWinners draws the house number, then a guess for each participant
func (g *GuessTheNumber) DetermineWinners(participants []*bettor.Bettor) []*bettor.Bettor {
	answer := g.rng.Intn(guessTheNumberRange)

	var winners []*bettor.Bettor
	for _, p := range participants {
		guess := g.rng.Intn(guessTheNumberRange)
		g.logger.WithFields(logrus.Fields{
			"bettor": p.Name,
			"guess":  guess,
		}).Info("bettor guessed")

		if guess == answer {
			winners = append(winners, p)
		}
	}

	g.logger.WithField("answer", answer).Info("the correct answer was drawn")
	return winners
}

// PayoutMultiplier is always 3.5
func (g *GuessTheNumber) PayoutMultiplier(*bettor.Bettor) decimal.Decimal {
	return guessTheNumberMultiplier
}
