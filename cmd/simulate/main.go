package main

import (
	"flag"
	"os"
	"strings"

	"casino-sim/internal/config"
	"casino-sim/internal/rng"
	"casino-sim/pkg/casino"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	fs.Int("rounds", 0, "overrides the configured number of rounds")
	fs.Int64("seed", 0, "overrides the configured seed, 0 forces crypto randomness")
	fs.String("summary", "yaml", "how the final summary is printed (yaml, none)")
	return fs
}

func main() {
	fs := newFlagSet()
	_ = fs.Parse(os.Args[1:])

	cfg := applyFlags(config.Instance(), fs)
	setupLogger(cfg)

	logrus.WithFields(logrus.Fields{
		"version":   Version,
		"maxRounds": cfg.MaxRounds,
		"seed":      cfg.Seed,
	}).Info("opening the house")

	gen := rng.New(cfg.Seed)
	house, err := casino.Open(logrus.StandardLogger(), cfg.Setup(gen), gen, nil)
	if err != nil {
		logrus.WithError(err).Fatal("could not open the house")
	}

	if err := house.Simulate(); err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}

	summary := fs.Lookup("summary").Value.String()
	switch strings.ToLower(summary) {
	case "yaml":
		if err := yaml.NewEncoder(os.Stdout).Encode(house.Summary()); err != nil {
			logrus.WithError(err).Fatal("could not write summary")
		}
	case "none":
	default:
		logrus.Fatalf("unknown summary format: %s", summary)
	}
}

// applyFlags overrides the configuration with the flags that were set on the command line
func applyFlags(cfg config.Config, fs *flag.FlagSet) config.Config {
	fs.Visit(func(f *flag.Flag) {
		value := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "rounds":
			if rounds := value.(int); rounds > 0 {
				cfg.MaxRounds = rounds
			}
		case "seed":
			cfg.Seed = value.(int64)
		}
	})

	return cfg
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
