package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// pickHighestPoints sheds the most valuable legal card, keeping the first one found on ties.
func pickHighestPoints(hand []*card.Card, playable []int) int {
	best := playable[0]
	for _, index := range playable[1:] {
		if hand[index].Points() > hand[best].Points() {
			best = index
		}
	}
	return best
}

// mostFrequentColor ignores black cards and returns nil for a hand without colors.
func mostFrequentColor(hand []*card.Card) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, c := range hand {
		if color.IsPlayable(c.Color()) {
			colorCounts[c.Color()]++
		}
	}

	var (
		mostFrequentColor       color.Color
		mostFrequentColorAmount int
	)
	for _, availableColor := range color.Playable {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor
}
