package rng_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/rng"
	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := rng.Crypto{}
	found := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[4])
	a.False(found[5])
}

func TestChance(t *testing.T) {
	gen := rng.NewSeeded(1)
	for i := 0; i < 100; i++ {
		assert.True(t, rng.Chance(gen, 1))
		assert.False(t, rng.Chance(gen, 0))
	}

	hits := 0
	for i := 0; i < 10000; i++ {
		if rng.Chance(gen, 0.5) {
			hits++
		}
	}
	assert.InDelta(t, 5000, hits, 500)
}

func TestShuffleKeepsElements(t *testing.T) {
	elements := []int{1, 2, 3, 4, 5, 6, 7, 8}
	rng.Shuffle(rng.NewSeeded(42), len(elements), func(i, j int) {
		elements[i], elements[j] = elements[j], elements[i]
	})
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, elements)
}

func TestShuffleIsUniform(t *testing.T) {
	const shuffles = 60000
	gen := rng.NewSeeded(2024)
	counts := make(map[[3]int]int)
	for i := 0; i < shuffles; i++ {
		elements := [3]int{0, 1, 2}
		rng.Shuffle(gen, len(elements), func(i, j int) {
			elements[i], elements[j] = elements[j], elements[i]
		})
		counts[elements]++
	}
	assert.Len(t, counts, 6)

	// chi-square with 5 degrees of freedom, 20.52 is the 0.001 critical value
	expected := float64(shuffles) / 6
	chiSquare := 0.0
	for _, count := range counts {
		diff := float64(count) - expected
		chiSquare += diff * diff / expected
	}
	assert.Less(t, chiSquare, 20.52)
}

func TestSeededIsReproducible(t *testing.T) {
	first, second := rng.NewSeeded(7), rng.NewSeeded(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Intn(100), second.Intn(100))
	}
}
