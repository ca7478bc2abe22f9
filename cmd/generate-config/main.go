package main

import (
	"os"

	"casino-sim/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// prints the default configuration, suitable as a starting config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
