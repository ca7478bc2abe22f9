package game

import (
	"casino-sim/pkg/bettor"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Game is a variant offered by the house, together with its betting book
type Game struct {
	variant Variant
	ledger  Ledger
	logger  logrus.FieldLogger

	// book preserves insertion order so draws are made in a stable order
	book    []Entry
	indexes map[*bettor.Bettor]int
}

// Result is the record of a single resolution
type Result struct {
	ID          string          `json:"id"`
	Game        string          `json:"game"`
	Entries     []Entry         `json:"entries"`
	Outcomes    []*Outcome      `json:"outcomes"`
	HouseProfit decimal.Decimal `json:"houseProfit"`
}

// New returns a new game that posts the house's side of every settlement to ledger
func New(logger logrus.FieldLogger, variant Variant, ledger Ledger) (*Game, error) {
	if ledger == nil {
		return nil, ErrNilLedger
	}

	switch variant.(type) {
	case Resolver, Rules:
	default:
		return nil, ErrUnsupportedVariant
	}

	return &Game{
		variant: variant,
		ledger:  ledger,
		logger:  logger.WithField("game", variant.Key()),
		indexes: make(map[*bettor.Bettor]int),
	}, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return g.variant.Name()
}

// Key returns a unique key
func (g *Game) Key() string {
	return g.variant.Key()
}

// Variant returns the underlying variant
func (g *Game) Variant() Variant {
	return g.variant
}

// AddBettor places a bet for the bettor, replacing any earlier bet
// The amount is not checked against the bettor's funds.
func (g *Game) AddBettor(b *bettor.Bettor, bet decimal.Decimal) {
	name := ""
	if b != nil {
		name = b.Name
	}

	entry := Entry{Bettor: b, Name: name, Bet: bet}
	if i, ok := g.indexes[b]; ok {
		g.book[i] = entry
		return
	}

	g.indexes[b] = len(g.book)
	g.book = append(g.book, entry)
}

// Entries returns a copy of the current book
func (g *Game) Entries() []Entry {
	return append([]Entry(nil), g.book...)
}

// Len returns the number of bettors in the book
func (g *Game) Len() int {
	return len(g.book)
}

// Resolve plays the game for everyone in the book and moves the money
// The book is always empty when Resolve returns.
func (g *Game) Resolve() (*Result, error) {
	entries := g.Entries()
	defer g.clearBook()

	tally := &tallyLedger{next: g.ledger}

	var outcomes []*Outcome
	var err error
	switch v := g.variant.(type) {
	case Resolver:
		if verr := validateEntries(entries); verr != nil {
			return nil, verr
		}

		outcomes, err = v.Resolve(entries, tally)
	case Rules:
		outcomes, err = Settle(v, entries, tally)
	}

	if err != nil {
		g.logger.WithError(err).Error("could not resolve game")
		return nil, err
	}

	result := &Result{
		ID:          uuid.New().String(),
		Game:        g.Name(),
		Entries:     entries,
		Outcomes:    outcomes,
		HouseProfit: tally.total,
	}

	g.logger.WithFields(logrus.Fields{
		"players": len(entries),
		"profit":  tally.total.String(),
	}).Debug("game resolved")

	return result, nil
}

func (g *Game) clearBook() {
	g.book = nil
	g.indexes = make(map[*bettor.Bettor]int)
}

// tallyLedger forwards to the house ledger while keeping a running total for one resolution
type tallyLedger struct {
	next  Ledger
	total decimal.Decimal
}

func (t *tallyLedger) AddProfit(amount decimal.Decimal) {
	t.total = t.total.Add(amount)
	t.next.AddProfit(amount)
}
