package policy

import (
	"errors"
	"fmt"
)

// ErrNonPositiveBet is returned when a policy is configured with a bet <= 0
var ErrNonPositiveBet = errors.New("bet must be > 0")

// ErrNegativeMultiplier is returned when a streak multiplier is < 0
var ErrNegativeMultiplier = errors.New("streak multipliers must be >= 0")

// ErrNonPositiveTarget is returned when an absolute target is <= 0
var ErrNonPositiveTarget = errors.New("target must be > 0")

// UnknownPolicyError is returned when no policy exists with the given name
type UnknownPolicyError string

func (u UnknownPolicyError) Error() string {
	return fmt.Sprintf("no policy with name: %s", string(u))
}
