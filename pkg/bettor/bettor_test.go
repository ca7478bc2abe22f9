package bettor

import (
	"testing"

	"casino-sim/pkg/money"
	"casino-sim/pkg/policy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// spyPolicy records every delta and the funds it saw when settled
type spyPolicy struct {
	bettor *Bettor
	deltas []decimal.Decimal
	seen   []decimal.Decimal
}

func (s *spyPolicy) Name() string { return "spy" }

func (s *spyPolicy) BetSize(funds decimal.Decimal) decimal.Decimal {
	return funds
}

func (s *spyPolicy) OnSettled(delta decimal.Decimal) {
	s.deltas = append(s.deltas, delta)
	if s.bettor != nil {
		s.seen = append(s.seen, s.bettor.Funds())
	}
}

func (s *spyPolicy) Target(startingFunds decimal.Decimal) decimal.Decimal {
	return startingFunds.Mul(decimal.NewFromInt(3))
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	b := New("Alice", money.FromInt(100), policy.NewStable(money.FromInt(15)))
	a.NotEmpty(b.ID)
	a.Equal("Alice", b.String())
	a.Equal("100", b.Funds().String())
	a.Equal("100", b.StartingFunds().String())
	a.Equal("200", b.Target().String())
	a.Equal("stable", b.Policy().Name())
	a.Equal("Alice (stable): $100.00 of $200.00", b.Describe())

	other := New("Alice", money.FromInt(100), policy.NewStable(money.FromInt(15)))
	a.NotEqual(b.ID, other.ID)
}

func TestBettor_ApplyDelta(t *testing.T) {
	a := assert.New(t)

	spy := &spyPolicy{}
	b := New("Spy", money.FromInt(50), spy)
	spy.bettor = b

	b.ApplyDelta(money.FromInt(-20))
	b.ApplyDelta(money.FromFloat(4.5))

	a.Equal("34.5", b.Funds().String())
	a.Equal("-15.5", b.Net().String())
	a.Equal([]string{"-20", "4.5"}, []string{spy.deltas[0].String(), spy.deltas[1].String()})
	a.Equal("30", spy.seen[0].String(), "funds are updated before the policy reacts")
}

func TestBettor_RequestBetSize(t *testing.T) {
	b := New("Bob", money.FromInt(50), policy.NewHighRisk(money.FromInt(10)))
	assert.Equal(t, "25", b.RequestBetSize().String())
}

func TestBettor_Termination(t *testing.T) {
	a := assert.New(t)

	b := New("Alice", money.FromInt(100), policy.NewStable(money.FromInt(15)))
	a.False(b.IsFinished())
	a.Equal(ExitReasonNone, b.ExitReason())

	b.ApplyDelta(money.FromInt(99))
	a.False(b.HasHitTarget())
	b.ApplyDelta(money.FromInt(1))
	a.True(b.HasHitTarget())
	a.True(b.IsFinished())
	a.Equal(ExitReasonTarget, b.ExitReason())

	b.ApplyDelta(money.FromInt(-200))
	a.True(b.IsBankrupt(), "zero funds is bankrupt")
	a.True(b.IsFinished())
	a.Equal(ExitReasonBankrupt, b.ExitReason())

	b.ApplyDelta(money.FromInt(-5))
	a.True(b.IsBankrupt())
}
