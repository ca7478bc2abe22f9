package config

import (
	"errors"
	"fmt"
	"os"

	"casino-sim/internal/rng"
	"casino-sim/internal/util"
	"casino-sim/pkg/casino"
	"casino-sim/pkg/game"
	"casino-sim/pkg/money"
	"casino-sim/pkg/policy"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the casino simulator
type Config struct {
	loaded    bool
	MaxRounds int `yaml:"maxRounds" envconfig:"max_rounds"`

	// Seed makes a run reproducible. 0 uses the crypto random source.
	Seed int64 `yaml:"seed" envconfig:"seed"`
	Log  struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log"`

	Games       []string    `yaml:"games" envconfig:"games"`
	SlotMachine SlotMachine `yaml:"slotMachine" envconfig:"slot_machine"`
	Bettors     []Bettor    `yaml:"bettors" ignored:"true"`
}

// SlotMachine configures the payouts of the slot machine
type SlotMachine struct {
	PlayCost     float64 `yaml:"playCost" envconfig:"play_cost"`
	WinLittle    float64 `yaml:"winLittle" envconfig:"win_little"`
	WinBig       float64 `yaml:"winBig" envconfig:"win_big"`
	JackpotStart float64 `yaml:"jackpotStart" envconfig:"jackpot_start"`
}

// Bettor is a member of the starting roster
// Which of the bet fields are used depends on the policy.
type Bettor struct {
	Name           string  `yaml:"name"`
	Funds          float64 `yaml:"funds"`
	Policy         string  `yaml:"policy"`
	Bet            float64 `yaml:"bet,omitempty"`
	YoloThreshold  float64 `yaml:"yoloThreshold,omitempty"`
	StartBet       float64 `yaml:"startBet,omitempty"`
	MinBet         float64 `yaml:"minBet,omitempty"`
	WinMultiplier  float64 `yaml:"winMultiplier,omitempty"`
	LoseMultiplier float64 `yaml:"loseMultiplier,omitempty"`
	Target         float64 `yaml:"target,omitempty"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values start from DefaultConfig(), are replaced by the YAML file if it
// exists, then by CASINO_* environment variables.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("CASINO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := envconfig.Process("casino", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	defaultSlot := game.DefaultSlotOptions()

	return Config{
		MaxRounds: casino.DefaultOptions().MaxRounds,
		Games:     game.DefaultKeys(),
		SlotMachine: SlotMachine{
			PlayCost:     defaultSlot.PlayCost.InexactFloat64(),
			WinLittle:    defaultSlot.WinLittle.InexactFloat64(),
			WinBig:       defaultSlot.WinBig.InexactFloat64(),
			JackpotStart: defaultSlot.JackpotStart.InexactFloat64(),
		},
		Bettors: []Bettor{
			{Name: "Alice", Funds: 100, Policy: policy.NameStable, Bet: 15},
			{Name: "Bob", Funds: 50, Policy: policy.NameHighRisk, YoloThreshold: 10},
			{
				Name:           "Camille",
				Funds:          200,
				Policy:         policy.NameStreak,
				StartBet:       10,
				MinBet:         10,
				WinMultiplier:  2,
				LoseMultiplier: 0.5,
				Target:         500,
			},
			{Name: "Earl Von Sandwich", Funds: 300, Policy: policy.NameMartingale, StartBet: 1},
		},
	}
}

// Validate checks the configuration for mistakes a simulation can't recover from
func (c Config) Validate() error {
	if c.MaxRounds < 1 {
		return ErrInvalidMaxRounds
	}

	if len(c.Games) == 0 {
		return ErrNoGames
	}

	seen := make(map[string]bool, len(c.Games))
	for _, key := range c.Games {
		if !game.IsKnown(key) {
			return game.UnknownGameError(key)
		}

		if seen[key] {
			return fmt.Errorf("game %s: %w", key, ErrDuplicateGame)
		}

		seen[key] = true
	}

	if c.SlotMachine.PlayCost < 0 {
		return ErrNegativePlayCost
	}

	if len(c.Bettors) == 0 {
		return ErrNoBettors
	}

	for i, b := range c.Bettors {
		if b.Funds <= 0 {
			return fmt.Errorf("bettor %d (%s): %w", i, b.Name, ErrNonPositiveFunds)
		}
	}

	return nil
}

// Setup converts the configuration into a casino setup
// Bettors without a name are given a random one drawn from gen.
func (c Config) Setup(gen rng.Generator) casino.Setup {
	bettors := make([]casino.BettorSetup, len(c.Bettors))
	for i, b := range c.Bettors {
		name := b.Name
		if name == "" {
			name = util.GetRandomName(gen)
		}

		bettors[i] = casino.BettorSetup{
			Name:  name,
			Funds: money.FromFloat(b.Funds),
			Policy: policy.Options{
				Kind:           b.Policy,
				Bet:            money.FromFloat(b.Bet),
				YoloThreshold:  money.FromFloat(b.YoloThreshold),
				StartBet:       money.FromFloat(b.StartBet),
				MinBet:         money.FromFloat(b.MinBet),
				WinMultiplier:  money.FromFloat(b.WinMultiplier),
				LoseMultiplier: money.FromFloat(b.LoseMultiplier),
				Target:         money.FromFloat(b.Target),
			},
		}
	}

	return casino.Setup{
		Options: casino.Options{MaxRounds: c.MaxRounds},
		Games:   append([]string(nil), c.Games...),
		GameOptions: game.Options{
			Slot: game.SlotOptions{
				PlayCost:     money.FromFloat(c.SlotMachine.PlayCost),
				WinLittle:    money.FromFloat(c.SlotMachine.WinLittle),
				WinBig:       money.FromFloat(c.SlotMachine.WinBig),
				JackpotStart: money.FromFloat(c.SlotMachine.JackpotStart),
			},
		},
		Bettors: bettors,
	}
}
