package config

import "errors"

// ErrInvalidMaxRounds is returned when maxRounds is < 1
var ErrInvalidMaxRounds = errors.New("maxRounds must be > 0")

// ErrNoGames is returned when no games are configured
var ErrNoGames = errors.New("at least one game is required")

// ErrDuplicateGame is returned when a game is listed twice
var ErrDuplicateGame = errors.New("game is listed more than once")

// ErrNegativePlayCost is returned when the slot machine play cost is < 0
var ErrNegativePlayCost = errors.New("slot machine play cost must be >= 0")

// ErrNoBettors is returned when the roster is empty
var ErrNoBettors = errors.New("at least one bettor is required")

// ErrNonPositiveFunds is returned when a bettor starts with funds <= 0
var ErrNonPositiveFunds = errors.New("starting funds must be > 0")
