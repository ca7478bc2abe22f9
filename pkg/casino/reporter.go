package casino

import (
	"casino-sim/pkg/bettor"
	"casino-sim/pkg/game"
	"casino-sim/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Reporter is notified of everything that happens in the house
type Reporter interface {
	RoundStarted(round int)
	BettorStatus(round int, b *bettor.Bettor)
	BettorLeft(departure *Departure)
	BookOpened(gameName string, entries []game.Entry)
	GameResolved(result *game.Result)
	RoundEnded(round int, roundProfit, totalProfit decimal.Decimal)
	SimulationEnded(summary *Summary)
}

// LogReporter writes every event to a logger
type LogReporter struct {
	logger logrus.FieldLogger
}

var _ Reporter = (*LogReporter)(nil)

// NewLogReporter returns a new LogReporter
func NewLogReporter(logger logrus.FieldLogger) *LogReporter {
	return &LogReporter{logger: logger}
}

// RoundStarted logs the round number
func (l *LogReporter) RoundStarted(round int) {
	l.logger.WithField("round", round).Info("beginning round")
}

// BettorStatus logs the bettor's funds
func (l *LogReporter) BettorStatus(round int, b *bettor.Bettor) {
	l.logger.WithFields(logrus.Fields{
		"round":  round,
		"bettor": b.Name,
		"funds":  money.Format(b.Funds()),
	}).Info("bettor balance")
}

// BettorLeft logs why the bettor left
func (l *LogReporter) BettorLeft(departure *Departure) {
	entry := l.logger.WithFields(logrus.Fields{
		"round":  departure.Round,
		"bettor": departure.Bettor.Name,
		"funds":  money.Format(departure.Bettor.Funds()),
		"reason": departure.Reason,
	})

	switch departure.Reason {
	case bettor.ExitReasonTarget:
		entry.Info("bettor has hit their target and leaves the casino")
	case bettor.ExitReasonBankrupt:
		entry.Info("bettor has gone bankrupt and leaves the casino")
	default:
		entry.Info("bettor leaves the casino")
	}
}

// BookOpened logs the bet of each entry
func (l *LogReporter) BookOpened(gameName string, entries []game.Entry) {
	l.logger.WithFields(logrus.Fields{
		"game":    gameName,
		"players": len(entries),
	}).Info("playing game")

	for _, e := range entries {
		l.logger.WithFields(logrus.Fields{
			"game":   gameName,
			"bettor": e.Name,
			"bet":    money.Format(e.Bet),
		}).Info("bet placed")
	}
}

// GameResolved logs each winner and loser and what the house made
func (l *LogReporter) GameResolved(result *game.Result) {
	for _, o := range result.Outcomes {
		entry := l.logger.WithFields(logrus.Fields{
			"game":   result.Game,
			"bettor": o.Name,
			"delta":  money.Format(o.Delta),
		})

		if o.Detail != "" {
			entry = entry.WithField("detail", o.Detail)
		}

		if o.Won {
			entry.Info("bettor is a winner")
		} else {
			entry.Info("bettor has lost")
		}
	}

	l.logger.WithFields(logrus.Fields{
		"game":   result.Game,
		"profit": money.Format(result.HouseProfit),
	}).Info("casino made money on this game")
}

// RoundEnded logs the profit for the round and in total
func (l *LogReporter) RoundEnded(round int, roundProfit, totalProfit decimal.Decimal) {
	l.logger.WithFields(logrus.Fields{
		"round":       round,
		"profit":      money.Format(roundProfit),
		"totalProfit": money.Format(totalProfit),
	}).Info("round complete")
}

// SimulationEnded logs the final tally
func (l *LogReporter) SimulationEnded(summary *Summary) {
	l.logger.WithFields(logrus.Fields{
		"rounds":      summary.Rounds,
		"totalProfit": summary.Profit,
	}).Info("simulation complete")
}
