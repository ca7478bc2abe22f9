package casino

import (
	"casino-sim/pkg/bettor"
	"casino-sim/pkg/game"
	"github.com/samber/lo"
)

// Summary is the state of the house after a simulation
type Summary struct {
	Rounds   int               `json:"rounds" yaml:"rounds"`
	Profit   string            `json:"profit" yaml:"profit"`
	Jackpots map[string]string `json:"jackpots,omitempty" yaml:"jackpots,omitempty"`
	Bettors  []*BettorSummary  `json:"bettors" yaml:"bettors"`
}

// BettorSummary is how a single bettor fared
type BettorSummary struct {
	Name          string            `json:"name" yaml:"name"`
	Policy        string            `json:"policy" yaml:"policy"`
	StartingFunds string            `json:"startingFunds" yaml:"startingFunds"`
	Funds         string            `json:"funds" yaml:"funds"`
	Target        string            `json:"target" yaml:"target"`
	ExitReason    bettor.ExitReason `json:"exitReason" yaml:"exitReason"`
	// LeftInRound is -1 if the bettor was still in the house at the end
	LeftInRound   int               `json:"leftInRound" yaml:"leftInRound"`
}

type jackpotHolder interface {
	Jackpot() *game.Jackpot
}

// Summary returns how the house and every bettor are doing
// Bettors are listed in the order they left, then those still present.
func (h *House) Summary() *Summary {
	left := lo.Map(h.left, func(d *Departure, _ int) *BettorSummary {
		return summarize(d.Bettor, d.Reason, d.Round)
	})

	present := lo.Map(h.active, func(b *bettor.Bettor, _ int) *BettorSummary {
		reason := b.ExitReason()
		if reason == bettor.ExitReasonNone {
			reason = bettor.ExitReasonRoundsCap
		}

		return summarize(b, reason, -1)
	})

	summary := &Summary{
		Rounds:  h.currentRound,
		Profit:  h.profit.StringFixed(2),
		Bettors: append(left, present...),
	}

	for _, g := range h.games {
		if holder, ok := g.Variant().(jackpotHolder); ok {
			if summary.Jackpots == nil {
				summary.Jackpots = make(map[string]string)
			}

			summary.Jackpots[g.Key()] = holder.Jackpot().Current().StringFixed(2)
		}
	}

	return summary
}

func summarize(b *bettor.Bettor, reason bettor.ExitReason, round int) *BettorSummary {
	return &BettorSummary{
		Name:          b.Name,
		Policy:        b.Policy().Name(),
		StartingFunds: b.StartingFunds().StringFixed(2),
		Funds:         b.Funds().StringFixed(2),
		Target:        b.Target().StringFixed(2),
		ExitReason:    reason,
		LeftInRound:   round,
	}
}
