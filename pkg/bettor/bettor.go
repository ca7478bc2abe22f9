package bettor

import (
	"fmt"

	"casino-sim/pkg/money"
	"casino-sim/pkg/policy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExitReason is why a bettor left the casino
type ExitReason string

// ExitReason constants
const (
	ExitReasonNone      ExitReason = ""
	ExitReasonTarget    ExitReason = "hit-target"
	ExitReasonBankrupt  ExitReason = "bankrupt"
	ExitReasonRoundsCap ExitReason = "rounds-exhausted"
)

// Bettor is an autonomous gambler with funds, a target and a betting policy
type Bettor struct {
	ID            string
	Name          string
	startingFunds decimal.Decimal
	funds         decimal.Decimal
	target        decimal.Decimal
	policy        policy.Policy
}

// New returns a new bettor
// The target is derived from the policy and the starting funds.
func New(name string, funds decimal.Decimal, p policy.Policy) *Bettor {
	return &Bettor{
		ID:            uuid.New().String(),
		Name:          name,
		startingFunds: funds,
		funds:         funds,
		target:        p.Target(funds),
		policy:        p,
	}
}

// String returns the name of the bettor
func (b *Bettor) String() string {
	return b.Name
}

// Funds returns the current funds
func (b *Bettor) Funds() decimal.Decimal {
	return b.funds
}

// StartingFunds returns the funds the bettor arrived with
func (b *Bettor) StartingFunds() decimal.Decimal {
	return b.startingFunds
}

// Target returns the amount at which the bettor leaves
func (b *Bettor) Target() decimal.Decimal {
	return b.target
}

// Policy returns the betting policy
func (b *Bettor) Policy() policy.Policy {
	return b.policy
}

// ApplyDelta adjusts the funds by amount, then lets the policy react to it
func (b *Bettor) ApplyDelta(amount decimal.Decimal) {
	b.funds = b.funds.Add(amount)
	b.policy.OnSettled(amount)
}

// RequestBetSize asks the policy how much to bet with the current funds
func (b *Bettor) RequestBetSize() decimal.Decimal {
	return b.policy.BetSize(b.funds)
}

// IsBankrupt returns true if the bettor has no money left
func (b *Bettor) IsBankrupt() bool {
	return !b.funds.IsPositive()
}

// HasHitTarget returns true if the funds reached the target
func (b *Bettor) HasHitTarget() bool {
	return b.funds.GreaterThanOrEqual(b.target)
}

// IsFinished returns true if the bettor should leave
func (b *Bettor) IsFinished() bool {
	return b.IsBankrupt() || b.HasHitTarget()
}

// ExitReason returns why a finished bettor leaves
// Hitting the target takes precedence over bankruptcy.
func (b *Bettor) ExitReason() ExitReason {
	switch {
	case b.HasHitTarget():
		return ExitReasonTarget
	case b.IsBankrupt():
		return ExitReasonBankrupt
	}

	return ExitReasonNone
}

// Net returns the funds gained or lost since arriving
func (b *Bettor) Net() decimal.Decimal {
	return b.funds.Sub(b.startingFunds)
}

// Describe returns a single line of the bettor's state for reports
func (b *Bettor) Describe() string {
	return fmt.Sprintf("%s (%s): %s of %s", b.Name, b.policy.Name(), money.Format(b.funds), money.Format(b.target))
}
