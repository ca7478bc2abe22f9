package casino

import (
	"fmt"

	"casino-sim/internal/rng"
	"casino-sim/pkg/bettor"
	"casino-sim/pkg/game"
	"casino-sim/pkg/policy"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// BettorSetup describes a bettor to admit when the house opens
type BettorSetup struct {
	Name   string
	Funds  decimal.Decimal
	Policy policy.Options
}

// Setup describes a house: its games in play order and its roster
type Setup struct {
	Options     Options
	Games       []string
	GameOptions game.Options
	Bettors     []BettorSetup
}

// Open builds a house from the setup
// Every game draws from gen.
func Open(logger logrus.FieldLogger, setup Setup, gen rng.Generator, reporter Reporter) (*House, error) {
	h, err := New(logger, setup.Options, reporter)
	if err != nil {
		return nil, err
	}

	for _, key := range setup.Games {
		variant, err := game.NewVariant(logger, key, gen, setup.GameOptions)
		if err != nil {
			return nil, err
		}

		if _, err := h.AddGame(variant); err != nil {
			return nil, err
		}
	}

	for _, bs := range setup.Bettors {
		p, err := policy.New(bs.Policy)
		if err != nil {
			return nil, fmt.Errorf("bettor %s: %w", bs.Name, err)
		}

		if err := h.Admit(bettor.New(bs.Name, bs.Funds, p)); err != nil {
			return nil, err
		}
	}

	return h, nil
}
