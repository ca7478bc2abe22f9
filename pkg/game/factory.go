package game

import (
	"casino-sim/internal/rng"
	"github.com/sirupsen/logrus"
)

// Game keys
const (
	KeyTailsIWin       = "tails-i-win"
	KeyGuessTheNumber  = "guess-the-number"
	KeyGuineaPigRacing = "guinea-pig-racing"
	KeySlotMachine     = "slot-machine"
)

// Options are shared by every variant the factory builds
type Options struct {
	Slot SlotOptions
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Slot: DefaultSlotOptions(),
	}
}

type factoryFunc func(logger logrus.FieldLogger, gen rng.Generator, opts Options) Variant

var factories = map[string]factoryFunc{
	KeyTailsIWin: func(logger logrus.FieldLogger, gen rng.Generator, _ Options) Variant {
		return NewTailsIWin(logger, gen)
	},
	KeyGuessTheNumber: func(logger logrus.FieldLogger, gen rng.Generator, _ Options) Variant {
		return NewGuessTheNumber(logger, gen)
	},
	KeyGuineaPigRacing: func(logger logrus.FieldLogger, gen rng.Generator, _ Options) Variant {
		return NewGuineaPigRacing(logger, gen)
	},
	KeySlotMachine: func(logger logrus.FieldLogger, gen rng.Generator, opts Options) Variant {
		return NewSlotMachine(logger, gen, opts.Slot)
	},
}

// DefaultKeys returns the games in the order the house plays them
func DefaultKeys() []string {
	return []string{KeyTailsIWin, KeyGuessTheNumber, KeyGuineaPigRacing, KeySlotMachine}
}

// IsKnown returns true if the factory can build the game
func IsKnown(key string) bool {
	_, ok := factories[key]
	return ok
}

// NewVariant builds the variant with the given key
func NewVariant(logger logrus.FieldLogger, key string, gen rng.Generator, opts Options) (Variant, error) {
	factory, ok := factories[key]
	if !ok {
		return nil, UnknownGameError(key)
	}

	return factory(logger.WithField("game", key), gen, opts), nil
}
