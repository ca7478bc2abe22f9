package rng

import "fmt"

// Scripted replays a fixed list of draws. It is meant for tests that need
// to force a specific outcome.
type Scripted struct {
	draws []int
	index int
}

// NewScripted returns a generator that returns draws in order
func NewScripted(draws ...int) *Scripted {
	return &Scripted{draws: draws}
}

// Intn returns the next scripted draw
// It panics if the script is exhausted or the draw is outside of [0, n)
func (s *Scripted) Intn(n int) int {
	if s.index >= len(s.draws) {
		panic(fmt.Sprintf("scripted generator exhausted after %d draws", len(s.draws)))
	}

	draw := s.draws[s.index]
	if draw < 0 || draw >= n {
		panic(fmt.Sprintf("scripted draw %d at index %d is outside [0, %d)", draw, s.index, n))
	}

	s.index++
	return draw
}

// Remaining returns how many draws have not been consumed
func (s *Scripted) Remaining() int {
	return len(s.draws) - s.index
}
