package core

import "math/rand"

// RNG is a seeded source of bounded random integers.
// Every spawn decision in a game draws from one RNG so that a fixed seed
// replays the same round.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded with the given value.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Between returns a uniformly distributed integer in [min, max], inclusive at
// both ends. If max < min the bounds are swapped.
func (g *RNG) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + g.r.Intn(max-min+1)
}
