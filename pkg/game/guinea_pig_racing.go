package game

import (
	"fmt"

	"casino-sim/internal/rng"
	"casino-sim/pkg/bettor"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// pigsInRace is how many pigs a bettor can pick from
const pigsInRace = 4

// raceTable weights the winning pig: 0 wins half the time, 1 a quarter, 2 and 3 an eighth each
var raceTable = []int{0, 0, 0, 0, 1, 1, 2, 3}

var pigMultipliers = map[int]decimal.Decimal{
	0: decimal.NewFromFloat(0.9),
	1: decimal.NewFromFloat(2.8),
	2: decimal.NewFromFloat(6.6),
	3: decimal.NewFromFloat(6.6),
}

// GuineaPigRacing is off-track guinea pig racing
// Bettors pick a pig uniformly and don't know the real odds, which is where
// the house gets its edge.
type GuineaPigRacing struct {
	logger logrus.FieldLogger
	rng    rng.Generator

	winningPig int
	multiplier decimal.Decimal
}

// NewGuineaPigRacing returns a new race
func NewGuineaPigRacing(logger logrus.FieldLogger, gen rng.Generator) *GuineaPigRacing {
	return &GuineaPigRacing{
		logger:     logger,
		rng:        gen,
		winningPig: -1,
		multiplier: decimal.Zero,
	}
}

// Name returns the name of the game
func (g *GuineaPigRacing) Name() string {
	return "Off-track Guinea Pig Racing"
}

// Key returns a unique key
func (g *GuineaPigRacing) Key() string {
	return KeyGuineaPigRacing
}

// WinningPig returns the winner of the last race, or -1 before the first race
func (g *GuineaPigRacing) WinningPig() int {
	return g.winningPig
}

// DetermineWinners runs the race, then has each participant pick a pig
func (g *GuineaPigRacing) DetermineWinners(participants []*bettor.Bettor) []*bettor.Bettor {
	g.winningPig = raceTable[g.rng.Intn(len(raceTable))]
	multiplier, ok := pigMultipliers[g.winningPig]
	if !ok {
		panic(fmt.Sprintf("no multiplier for pig %d", g.winningPig))
	}
	g.multiplier = multiplier

	var winners []*bettor.Bettor
	for _, p := range participants {
		pick := g.rng.Intn(pigsInRace)
		g.logger.WithFields(logrus.Fields{
			"bettor": p.Name,
			"pig":    pick,
		}).Info("bettor picked a pig")

		if pick == g.winningPig {
			winners = append(winners, p)
		}
	}

	g.logger.WithField("pig", g.winningPig).Info("the winning pig crossed the line")
	return winners
}

// PayoutMultiplier is set by the winning pig and shared by all winners of the race
func (g *GuineaPigRacing) PayoutMultiplier(*bettor.Bettor) decimal.Decimal {
	return g.multiplier
}
