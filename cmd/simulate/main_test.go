package main

import (
	"testing"

	"casino-sim/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestApplyFlags(t *testing.T) {
	a := assert.New(t)
	cfg := config.DefaultConfig()
	cfg.Seed = 7

	fs := newFlagSet()
	a.NoError(fs.Parse([]string{}))
	got := applyFlags(cfg, fs)
	a.Equal(int64(7), got.Seed, "unset flags keep the configured value")
	a.Equal(5, got.MaxRounds)

	fs = newFlagSet()
	a.NoError(fs.Parse([]string{"-seed", "0", "-rounds", "12"}))
	got = applyFlags(cfg, fs)
	a.Equal(int64(0), got.Seed, "an explicit zero seed forces crypto randomness")
	a.Equal(12, got.MaxRounds)
	a.Equal(int64(7), cfg.Seed)

	fs = newFlagSet()
	a.NoError(fs.Parse([]string{"-seed", "99", "-rounds", "0"}))
	got = applyFlags(cfg, fs)
	a.Equal(int64(99), got.Seed)
	a.Equal(5, got.MaxRounds, "a zero round count keeps the configured value")
}
