package game

import (
	"testing"

	"casino-sim/internal/rng"
	"casino-sim/pkg/money"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestTailsIWin_Heads(t *testing.T) {
	a := assert.New(t)
	g, ledger := newTestGame(t, NewTailsIWin(logrus.StandardLogger(), rng.NewScripted(1)))

	alice := newBettor("Alice", 100)
	g.AddBettor(alice, money.FromInt(10))
	result, err := g.Resolve()
	a.NoError(err)

	amountEqual(t, 109, alice.Funds())
	amountEqual(t, -9, ledger.profit)
	a.True(result.Outcomes[0].Won)
}

func TestTailsIWin_Tails(t *testing.T) {
	a := assert.New(t)
	g, ledger := newTestGame(t, NewTailsIWin(logrus.StandardLogger(), rng.NewScripted(0)))

	alice := newBettor("Alice", 100)
	bob := newBettor("Bob", 50)
	g.AddBettor(alice, money.FromInt(10))
	g.AddBettor(bob, money.FromInt(25))
	result, err := g.Resolve()
	a.NoError(err)

	amountEqual(t, 90, alice.Funds())
	amountEqual(t, 25, bob.Funds())
	amountEqual(t, 35, ledger.profit)
	a.False(result.Outcomes[0].Won)
	a.False(result.Outcomes[1].Won)
}

func TestGuessTheNumber(t *testing.T) {
	a := assert.New(t)
	// house draws 3, Alice guesses 3, Bob guesses 1
	g, ledger := newTestGame(t, NewGuessTheNumber(logrus.StandardLogger(), rng.NewScripted(3, 3, 1)))

	alice := newBettor("Alice", 100)
	bob := newBettor("Bob", 100)
	g.AddBettor(alice, money.FromInt(20))
	g.AddBettor(bob, money.FromInt(20))
	_, err := g.Resolve()
	a.NoError(err)

	amountEqual(t, 170, alice.Funds())
	amountEqual(t, 80, bob.Funds())
	amountEqual(t, -50, ledger.profit)
	a.Equal("Guess the Number", g.Name())
}

func TestGuineaPigRacing(t *testing.T) {
	a := assert.New(t)
	race := NewGuineaPigRacing(logrus.StandardLogger(), rng.NewScripted(6, 2, 0))
	a.Equal(-1, race.WinningPig())
	g, ledger := newTestGame(t, race)

	alice := newBettor("Alice", 100)
	bob := newBettor("Bob", 100)
	g.AddBettor(alice, money.FromInt(10))
	g.AddBettor(bob, money.FromInt(10))
	_, err := g.Resolve()
	a.NoError(err)

	a.Equal(2, race.WinningPig())
	amountEqual(t, 166, alice.Funds())
	amountEqual(t, 90, bob.Funds())
	amountEqual(t, -56, ledger.profit)
}

func TestGuineaPigRacing_Multipliers(t *testing.T) {
	for tableIndex, expected := range map[int]float64{0: 0.9, 3: 0.9, 4: 2.8, 5: 2.8, 6: 6.6, 7: 6.6} {
		race := NewGuineaPigRacing(logrus.StandardLogger(), rng.NewScripted(tableIndex))
		race.DetermineWinners(nil)
		amountEqual(t, expected, race.PayoutMultiplier(nil), "table index %d", tableIndex)
	}
}

func TestGuineaPigRacing_BettorsPickUniformly(t *testing.T) {
	a := assert.New(t)
	gen := &recordingGenerator{next: rng.NewScripted(6, 2, 0)}
	g, _ := newTestGame(t, NewGuineaPigRacing(logrus.StandardLogger(), gen))

	g.AddBettor(newBettor("Alice", 100), money.FromInt(10))
	g.AddBettor(newBettor("Bob", 100), money.FromInt(10))
	_, err := g.Resolve()
	a.NoError(err)

	// the race draws from the weighted table, each pick from the four pigs
	a.Equal([]int{8, 4, 4}, gen.requested)
}
