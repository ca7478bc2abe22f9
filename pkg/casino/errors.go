package casino

import "errors"

// ErrDuplicateBettor is returned when a bettor is admitted twice
var ErrDuplicateBettor = errors.New("bettor has already been admitted")

// ErrDuplicateGame is returned when the same game is added twice
var ErrDuplicateGame = errors.New("game has already been added")

// ErrInvalidMaxRounds is returned when the round cap is < 1
var ErrInvalidMaxRounds = errors.New("max rounds must be > 0")
