package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/rng"
)

func pickRandom(gen rng.Generator, playable []int) int {
	return playable[gen.Intn(len(playable))]
}

// pickActionFirst plays the first legal action card, or any legal card when there is none.
func pickActionFirst(gen rng.Generator, hand []*card.Card, playable []int) int {
	for _, index := range playable {
		if hand[index].IsAction() {
			return index
		}
	}
	return pickRandom(gen, playable)
}
