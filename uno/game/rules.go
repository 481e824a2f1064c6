package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Playable reports whether candidateCard may be played on lastPlayedCard:
// wild cards always, otherwise a color or rank match is required.
func Playable(candidateCard *card.Card, lastPlayedCard *card.Card) bool {
	if candidateCard == nil {
		return false
	}
	if candidateCard.IsWild() || lastPlayedCard == nil {
		return true
	}
	return candidateCard.Color() == lastPlayedCard.Color() || candidateCard.Rank() == lastPlayedCard.Rank()
}
