package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Hand struct {
	cards []*card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]*card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []*card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []*card.Card {
	cards := make([]*card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) At(index int) (*card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, ErrIndexOutOfRange
	}
	return h.cards[index], nil
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableIndices(lastPlayedCard *card.Card) []int {
	return PlayableIndices(h.cards, lastPlayedCard)
}

// RemoveAt takes the card at index out of the hand, keeping the order of the rest.
func (h *Hand) RemoveAt(index int) (*card.Card, error) {
	removed, err := h.At(index)
	if err != nil {
		return nil, err
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) IndexOf(searched *card.Card) int {
	for index, c := range h.cards {
		if c == searched {
			return index
		}
	}
	return -1
}

func (h *Hand) Clear() []*card.Card {
	cards := h.cards
	h.cards = make([]*card.Card, 0, 7)
	return cards
}

func (h *Hand) Points() int {
	points := 0
	for _, c := range h.cards {
		points += c.Points()
	}
	return points
}

func (h *Hand) HasColor(wanted color.Color) bool {
	return HasColor(h.cards, wanted)
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func PlayableIndices(cards []*card.Card, lastPlayedCard *card.Card) []int {
	var indices []int
	for index, candidateCard := range cards {
		if Playable(candidateCard, lastPlayedCard) {
			indices = append(indices, index)
		}
	}
	return indices
}

func HasColor(cards []*card.Card, wanted color.Color) bool {
	for _, c := range cards {
		if c.Color() == wanted {
			return true
		}
	}
	return false
}
