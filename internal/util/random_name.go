package util

import (
	"fmt"

	"casino-sim/internal/rng"
)

var adjectives = []string{
	"Lucky", "Unlucky", "Reckless", "Cautious", "Hopeful", "Broke", "Flush", "Sweaty", "Stoic", "Giddy",
	"Grumpy", "Jolly", "Nervous", "Smug", "Sleepy", "Wired", "Dapper", "Rumpled", "Shifty", "Honest",
	"Loud", "Quiet", "High-Rolling", "Penny-Pinching",
}

var nicknames = []string{
	"Dealer", "Punter", "Highroller", "Shark", "Whale", "Rookie", "Regular", "Tourist", "Hustler",
	"Accountant", "Dentist", "Cowboy", "Grandma", "Uncle", "Bartender", "Magician", "Pilot", "Sailor",
	"Professor", "Ghost",
}

// GetRandomName returns a random name by combining an adjective with a nickname
func GetRandomName(gen rng.Generator) string {
	adjectivesIndex := gen.Intn(len(adjectives))
	nicknamesIndex := gen.Intn(len(nicknames))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nicknames[nicknamesIndex])
}
