package game

import (
	"fmt"
	"strings"

	"casino-sim/internal/rng"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SlotTier is how well a spin matched
type SlotTier int

// SlotTier constants
const (
	SlotTierLose SlotTier = iota
	SlotTierTwo
	SlotTierThree
	SlotTierJackpot
)

// String returns the tier
func (s SlotTier) String() string {
	switch s {
	case SlotTierLose:
		return "Lose"
	case SlotTierTwo:
		return "Two of a Kind"
	case SlotTierThree:
		return "Three in a Row"
	case SlotTierJackpot:
		return "Jackpot"
	}

	panic(fmt.Sprintf("unknown slot tier: %d", s))
}

const reelsPerSpin = 4

var slotSymbols = []string{"♥", "♣", "♦", "♠"}

var half = decimal.NewFromFloat(0.5)

// SlotOptions configure a slot machine
type SlotOptions struct {
	PlayCost     decimal.Decimal
	WinLittle    decimal.Decimal
	WinBig       decimal.Decimal
	JackpotStart decimal.Decimal
}

// DefaultSlotOptions returns the default set of options
func DefaultSlotOptions() SlotOptions {
	return SlotOptions{
		PlayCost:     decimal.NewFromInt(2),
		WinLittle:    decimal.NewFromInt(5),
		WinBig:       decimal.NewFromInt(10),
		JackpotStart: decimal.NewFromInt(10),
	}
}

// Spin is the result of pulling the lever once
type Spin [reelsPerSpin]int

// String renders the spin, e.g. [♥|♣|♦|♠]
func (s Spin) String() string {
	symbols := make([]string, len(s))
	for i, reel := range s {
		symbols[i] = slotSymbols[reel]
	}

	return "[" + strings.Join(symbols, "|") + "]"
}

// Tier returns how far the first symbol matched along the reels
func (s Spin) Tier() SlotTier {
	tier := SlotTierLose
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			break
		}

		tier++
	}

	return tier
}

// SlotMachine is Suits-a-Plenty
// Every player pays a fixed cost regardless of their bet. Half of a losing
// play feeds the jackpot, which is not the house's money.
type SlotMachine struct {
	logger  logrus.FieldLogger
	rng     rng.Generator
	options SlotOptions
	jackpot *Jackpot
}

// NewSlotMachine returns a new slot machine
func NewSlotMachine(logger logrus.FieldLogger, gen rng.Generator, options SlotOptions) *SlotMachine {
	return &SlotMachine{
		logger:  logger,
		rng:     gen,
		options: options,
		jackpot: NewJackpot(options.JackpotStart),
	}
}

// Name returns the name of the game
func (s *SlotMachine) Name() string {
	return "Suits-a-Plenty"
}

// Key returns a unique key
func (s *SlotMachine) Key() string {
	return KeySlotMachine
}

// Jackpot returns the progressive pool
func (s *SlotMachine) Jackpot() *Jackpot {
	return s.jackpot
}

// Options returns the machine's options
func (s *SlotMachine) Options() SlotOptions {
	return s.options
}

// Spin pulls the lever once
func (s *SlotMachine) Spin() Spin {
	var spin Spin
	for i := range spin {
		spin[i] = s.rng.Intn(len(slotSymbols))
	}

	return spin
}

// Resolve spins once for every entry and pays out by tier
// Placed bets are ignored, everyone pays the play cost.
func (s *SlotMachine) Resolve(entries []Entry, ledger Ledger) ([]*Outcome, error) {
	cost := s.options.PlayCost

	spins := make([]Spin, len(entries))
	for i, e := range entries {
		spins[i] = s.Spin()
		s.logger.WithFields(logrus.Fields{
			"bettor": e.Name,
			"spin":   spins[i].String(),
		}).Info("spin to win")
	}

	outcomes := make([]*Outcome, len(entries))
	for i, e := range entries {
		spin := spins[i]
		var delta decimal.Decimal

		switch tier := spin.Tier(); tier {
		case SlotTierLose:
			delta = cost.Neg()
			ledger.AddProfit(cost.Mul(half))
			s.jackpot.Contribute(cost.Mul(half))
		case SlotTierTwo:
			delta = s.options.WinLittle.Sub(cost)
			ledger.AddProfit(cost.Sub(s.options.WinLittle))
		case SlotTierThree:
			delta = s.options.WinBig.Sub(cost)
			ledger.AddProfit(cost.Sub(s.options.WinBig))
		case SlotTierJackpot:
			won := s.jackpot.Claim()
			delta = won.Sub(cost)
			// the house books the starting value of the pool, not what was won
			ledger.AddProfit(cost.Sub(s.jackpot.Start()))
			s.logger.WithFields(logrus.Fields{
				"bettor":  e.Name,
				"jackpot": won.String(),
			}).Info("jackpot hit")
		default:
			return nil, fmt.Errorf("unknown slot tier: %d", tier)
		}

		e.Bettor.ApplyDelta(delta)
		outcomes[i] = &Outcome{
			Bettor: e.Bettor,
			Name:   e.Name,
			Bet:    cost,
			Delta:  delta,
			Won:    spin.Tier() != SlotTierLose,
			Detail: fmt.Sprintf("%s %s", spin, spin.Tier()),
		}
	}

	s.logger.WithField("jackpot", s.jackpot.Current().String()).Info("jackpot updated")
	return outcomes, nil
}
