package game

import (
	"casino-sim/pkg/bettor"
	"github.com/samber/lo"
)

// Settle runs the standard settlement for rules
// Winners receive bet * multiplier, losers give up their bet. A bettor's
// principal is never escrowed, so only the net change is applied.
//
// All entries are validated and the winners checked against the participants
// before any money moves.
func Settle(rules Rules, entries []Entry, ledger Ledger) ([]*Outcome, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	participants := lo.Map(entries, func(e Entry, _ int) *bettor.Bettor {
		return e.Bettor
	})

	winners := rules.DetermineWinners(participants)
	isWinner := make(map[*bettor.Bettor]bool, len(winners))
	for _, w := range winners {
		if !lo.Contains(participants, w) {
			name := "<nil>"
			if w != nil {
				name = w.Name
			}

			return nil, UnknownWinnerError{Game: rules.Name(), Bettor: name}
		}

		if isWinner[w] {
			return nil, ErrDuplicateWinner
		}

		isWinner[w] = true
	}

	// winners are paid first, then losers are collected
	won := func(e Entry, _ int) bool {
		return isWinner[e.Bettor]
	}
	winning := lo.Filter(entries, won)
	losing := lo.Reject(entries, won)

	outcomes := make([]*Outcome, 0, len(entries))
	for _, e := range winning {
		winnings := e.Bet.Mul(rules.PayoutMultiplier(e.Bettor))
		e.Bettor.ApplyDelta(winnings)
		ledger.AddProfit(winnings.Neg())
		outcomes = append(outcomes, &Outcome{
			Bettor: e.Bettor,
			Name:   e.Name,
			Bet:    e.Bet,
			Delta:  winnings,
			Won:    true,
		})
	}

	for _, e := range losing {
		e.Bettor.ApplyDelta(e.Bet.Neg())
		ledger.AddProfit(e.Bet)
		outcomes = append(outcomes, &Outcome{
			Bettor: e.Bettor,
			Name:   e.Name,
			Bet:    e.Bet,
			Delta:  e.Bet.Neg(),
		})
	}

	return outcomes, nil
}

func validateEntries(entries []Entry) error {
	for _, e := range entries {
		if e.Bettor == nil {
			return ErrNilBettor
		}

		if e.Bet.IsNegative() {
			return NegativeBetError{Bettor: e.Bettor.Name, Bet: e.Bet}
		}
	}

	return nil
}
