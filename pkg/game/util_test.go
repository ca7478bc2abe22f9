package game

import (
	"testing"

	"casino-sim/internal/rng"
	"casino-sim/pkg/bettor"
	"casino-sim/pkg/money"
	"casino-sim/pkg/policy"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLedger struct {
	profit decimal.Decimal
}

func (t *testLedger) AddProfit(amount decimal.Decimal) {
	t.profit = t.profit.Add(amount)
}

func newBettor(name string, funds int64) *bettor.Bettor {
	return bettor.New(name, money.FromInt(funds), policy.NewStable(money.FromInt(10)))
}

func newTestGame(t *testing.T, variant Variant) (*Game, *testLedger) {
	t.Helper()

	ledger := &testLedger{}
	g, err := New(logrus.StandardLogger(), variant, ledger)
	require.NoError(t, err)
	return g, ledger
}

func amountEqual(t *testing.T, expected float64, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, money.FromFloat(expected).String(), actual.String(), msgAndArgs...)
}

// sumDeltas returns the sum of every outcome's delta
func sumDeltas(outcomes []*Outcome) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range outcomes {
		sum = sum.Add(o.Delta)
	}

	return sum
}

// recordingGenerator remembers the bound of every draw
type recordingGenerator struct {
	next      rng.Generator
	requested []int
}

func (r *recordingGenerator) Intn(n int) int {
	r.requested = append(r.requested, n)
	return r.next.Intn(n)
}
