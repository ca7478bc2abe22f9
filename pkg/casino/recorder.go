package casino

import (
	"casino-sim/pkg/bettor"
	"casino-sim/pkg/game"
	"github.com/shopspring/decimal"
)

// EventType is the kind of event a Recorder captured
type EventType string

// EventType constants
const (
	EventRoundStarted    EventType = "round-started"
	EventBettorStatus    EventType = "bettor-status"
	EventBettorLeft      EventType = "bettor-left"
	EventBookOpened      EventType = "book-opened"
	EventGameResolved    EventType = "game-resolved"
	EventRoundEnded      EventType = "round-ended"
	EventSimulationEnded EventType = "simulation-ended"
)

// Event is a single captured notification
type Event struct {
	Type        EventType
	Round       int
	Bettor      string
	Funds       decimal.Decimal
	Departure   *Departure
	Game        string
	Entries     []game.Entry
	Result      *game.Result
	Profit      decimal.Decimal
	TotalProfit decimal.Decimal
	Summary     *Summary
}

// Recorder keeps every event in memory
type Recorder struct {
	Events []*Event
}

var _ Reporter = (*Recorder)(nil)

// RoundStarted records the event
func (r *Recorder) RoundStarted(round int) {
	r.Events = append(r.Events, &Event{Type: EventRoundStarted, Round: round})
}

// BettorStatus records the event
func (r *Recorder) BettorStatus(round int, b *bettor.Bettor) {
	r.Events = append(r.Events, &Event{Type: EventBettorStatus, Round: round, Bettor: b.Name, Funds: b.Funds()})
}

// BettorLeft records the event
func (r *Recorder) BettorLeft(departure *Departure) {
	r.Events = append(r.Events, &Event{
		Type:      EventBettorLeft,
		Round:     departure.Round,
		Bettor:    departure.Bettor.Name,
		Departure: departure,
	})
}

// BookOpened records the event
func (r *Recorder) BookOpened(gameName string, entries []game.Entry) {
	r.Events = append(r.Events, &Event{Type: EventBookOpened, Game: gameName, Entries: entries})
}

// GameResolved records the event
func (r *Recorder) GameResolved(result *game.Result) {
	r.Events = append(r.Events, &Event{Type: EventGameResolved, Game: result.Game, Result: result, Profit: result.HouseProfit})
}

// RoundEnded records the event
func (r *Recorder) RoundEnded(round int, roundProfit, totalProfit decimal.Decimal) {
	r.Events = append(r.Events, &Event{Type: EventRoundEnded, Round: round, Profit: roundProfit, TotalProfit: totalProfit})
}

// SimulationEnded records the event
func (r *Recorder) SimulationEnded(summary *Summary) {
	r.Events = append(r.Events, &Event{Type: EventSimulationEnded, Summary: summary})
}

// OfType returns the events of the given type
func (r *Recorder) OfType(t EventType) []*Event {
	var events []*Event
	for _, e := range r.Events {
		if e.Type == t {
			events = append(events, e)
		}
	}

	return events
}
