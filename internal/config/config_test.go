package config

import (
	"os"
	"testing"

	"casino-sim/internal/rng"
	"casino-sim/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("CASINO_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("CASINO_SEED", "42")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal(12, cfg.MaxRounds)
	a.Equal(int64(42), cfg.Seed, "the environment wins over the file")
	a.Equal("debug", cfg.Log.Level)
	a.Equal([]string{"slot-machine", "tails-i-win"}, cfg.Games)
	a.Equal(3.0, cfg.SlotMachine.PlayCost)
	a.Equal(20.0, cfg.SlotMachine.JackpotStart)
	a.Len(cfg.Bettors, 2)
	a.Equal("Dana", cfg.Bettors[0].Name)

	// ensure that it's only loaded once
	_ = os.Setenv("CASINO_SEED", "43")
	// ensure we aren't using a pointer
	cfg.Seed = 0
	cfg = Instance()
	a.Equal(int64(42), cfg.Seed)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("CASINO_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 5, cfg.MaxRounds)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, []string{"tails-i-win", "guess-the-number", "guinea-pig-racing", "slot-machine"}, cfg.Games)
	assert.Equal(t, "Earl Von Sandwich", cfg.Bettors[3].Name)
	assert.Equal(t, 2.0, cfg.SlotMachine.PlayCost)
}

func TestLoad_Errors(t *testing.T) {
	a := assert.New(t)

	clear := util.SetEnv("CASINO_CONFIG_FILE", "testdata/invalid.yaml")
	a.Equal(ErrInvalidMaxRounds, Load())
	clear()

	clear = util.SetEnv("CASINO_CONFIG_FILE", "testdata/malformed.yaml")
	a.Error(Load())
	clear()

	clear1 := util.SetEnv("CASINO_CONFIG_FILE", "testdata/does-not-exist.yaml")
	clear2 := util.SetEnv("CASINO_MAX_ROUNDS", "many")
	a.Error(Load())
	clear2()
	clear1()
}

func TestConfig_Validate(t *testing.T) {
	a := assert.New(t)
	a.NoError(DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Games = nil
	a.Equal(ErrNoGames, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Games = []string{"tails-i-win", "roulette"}
	a.EqualError(cfg.Validate(), "no game with key: roulette")

	cfg = DefaultConfig()
	cfg.Games = []string{"tails-i-win", "tails-i-win"}
	a.ErrorIs(cfg.Validate(), ErrDuplicateGame)

	cfg = DefaultConfig()
	cfg.SlotMachine.PlayCost = -1
	a.Equal(ErrNegativePlayCost, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Bettors = nil
	a.Equal(ErrNoBettors, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Bettors[1].Funds = 0
	a.EqualError(cfg.Validate(), "bettor 1 (Bob): starting funds must be > 0")
}

func TestConfig_Setup(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultConfig()
	cfg.Bettors = append(cfg.Bettors, Bettor{Funds: 10, Policy: "stable", Bet: 1})
	setup := cfg.Setup(rng.NewScripted(0, 0))

	a.Equal(5, setup.Options.MaxRounds)
	a.Equal(cfg.Games, setup.Games)
	a.Equal("2", setup.GameOptions.Slot.PlayCost.String())
	a.Equal("10", setup.GameOptions.Slot.JackpotStart.String())
	a.Len(setup.Bettors, 5)

	camille := setup.Bettors[2]
	a.Equal("Camille", camille.Name)
	a.Equal("200", camille.Funds.String())
	a.Equal("streak", camille.Policy.Kind)
	a.Equal("0.5", camille.Policy.LoseMultiplier.String())
	a.Equal("500", camille.Policy.Target.String())

	a.Equal("Lucky Dealer", setup.Bettors[4].Name, "unnamed bettors get a random name")

	setup.Games[0] = "changed"
	a.Equal("tails-i-win", cfg.Games[0])
}

func TestConfig_Setup_SeededNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bettors = append(cfg.Bettors, Bettor{Funds: 10, Policy: "stable", Bet: 1}, Bettor{Funds: 20, Policy: "stable", Bet: 2})

	first := cfg.Setup(rng.NewSeeded(7))
	second := cfg.Setup(rng.NewSeeded(7))
	assert.Equal(t, first.Bettors[4].Name, second.Bettors[4].Name)
	assert.Equal(t, first.Bettors[5].Name, second.Bettors[5].Name)
	assert.Equal(t, "Alice", first.Bettors[0].Name)
}
