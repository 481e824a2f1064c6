package rng

import (
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

const chanceResolution = 1000000

// NewSeeded returns a reproducible generator. It is not safe for concurrent use.
func NewSeeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}

// Chance reports true with the given probability.
func Chance(gen Generator, probability float64) bool {
	if probability >= 1 {
		return true
	}
	if probability <= 0 {
		return false
	}
	return gen.Intn(chanceResolution) < int(probability*chanceResolution)
}

// Shuffle performs a Fisher-Yates shuffle over n elements.
func Shuffle(gen Generator, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, gen.Intn(i+1))
	}
}
