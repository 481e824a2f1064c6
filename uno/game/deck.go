package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/rng"
)

// Deck holds the draw pile and the discard pile of a round. The last element
// of each slice is its top.
type Deck struct {
	drawPile    []*card.Card
	discardPile []*card.Card
	gen         rng.Generator
}

func NewDeck(gen rng.Generator) *Deck {
	deck := &Deck{gen: gen}
	fillDeck(deck)
	return deck
}

// NewStackedDeck returns an unshuffled deck that deals cards in the given order.
func NewStackedDeck(gen rng.Generator, cards ...*card.Card) *Deck {
	deck := &Deck{gen: gen, drawPile: make([]*card.Card, 0, len(cards))}
	for i := len(cards) - 1; i >= 0; i-- {
		deck.drawPile = append(deck.drawPile, cards[i])
	}
	return deck
}

// Draw takes the top of the draw pile, reshuffling the discards into it when
// it runs out. It returns nil when both piles are exhausted.
func (d *Deck) Draw() *card.Card {
	if len(d.drawPile) == 0 && !d.Reshuffle() {
		return nil
	}
	top := d.drawPile[len(d.drawPile)-1]
	d.drawPile = d.drawPile[:len(d.drawPile)-1]
	return top
}

func (d *Deck) DrawN(amount int) []*card.Card {
	cards := make([]*card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn := d.Draw()
		if drawn == nil {
			break
		}
		cards = append(cards, drawn)
	}
	return cards
}

func (d *Deck) Play(c *card.Card) {
	d.discardPile = append(d.discardPile, c)
}

func (d *Deck) Top() *card.Card {
	if len(d.discardPile) == 0 {
		return nil
	}
	return d.discardPile[len(d.discardPile)-1]
}

// SetupInitialCard reveals the first discard. A wild draw four is sent to the
// bottom of the draw pile and the pile is shuffled before drawing again.
func (d *Deck) SetupInitialCard() *card.Card {
	if !d.holdsStartingCard() {
		return nil
	}
	for {
		drawn := d.Draw()
		if drawn == nil {
			return nil
		}
		if drawn.Rank() != card.WildDrawFour {
			d.Play(drawn)
			return drawn
		}
		d.PutBottom(drawn)
		d.shuffle(d.drawPile)
	}
}

func (d *Deck) holdsStartingCard() bool {
	for _, c := range d.drawPile {
		if c.Rank() != card.WildDrawFour {
			return true
		}
	}
	return false
}

// Reshuffle moves every discard except the top back into the draw pile.
func (d *Deck) Reshuffle() bool {
	if len(d.discardPile) <= 1 {
		return false
	}
	top := d.discardPile[len(d.discardPile)-1]
	recycled := d.discardPile[:len(d.discardPile)-1]
	for _, c := range recycled {
		c.ResetColor()
	}
	d.drawPile = append(d.drawPile, recycled...)
	d.discardPile = []*card.Card{top}
	d.shuffle(d.drawPile)
	return true
}

func (d *Deck) PutBottom(cards ...*card.Card) {
	for _, c := range cards {
		c.ResetColor()
	}
	d.drawPile = append(append(make([]*card.Card, 0, len(d.drawPile)+len(cards)), cards...), d.drawPile...)
}

func (d *Deck) Exhausted() bool {
	return len(d.drawPile) == 0 && len(d.discardPile) <= 1
}

func (d *Deck) DrawPileSize() int {
	return len(d.drawPile)
}

func (d *Deck) DiscardPileSize() int {
	return len(d.discardPile)
}

func (d *Deck) DiscardPile() []*card.Card {
	cards := make([]*card.Card, len(d.discardPile))
	copy(cards, d.discardPile)
	return cards
}

func (d *Deck) shuffle(cards []*card.Card) {
	rng.Shuffle(d.gen, len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

func fillDeck(deck *Deck) {
	cards := make([]*card.Card, 0, consts.DeckSize)

	cards = append(cards, createBlackCards()...)
	for _, c := range color.Playable {
		cards = append(cards, createColorCards(c)...)
	}

	deck.shuffle(cards)

	deck.drawPile = append(deck.drawPile, cards...)
}

func createColorCards(cardColor color.Color) []*card.Card {
	cards := []*card.Card{card.NewNumberCard(cardColor, 0)}

	for copies := 0; copies < 2; copies++ {
		cards = append(cards,
			card.NewSkipCard(cardColor),
			card.NewReverseCard(cardColor),
			card.NewDrawTwoCard(cardColor),
		)
		for number := 1; number <= 9; number++ {
			cards = append(cards, card.NewNumberCard(cardColor, number))
		}
	}

	return cards
}

func createBlackCards() []*card.Card {
	cards := make([]*card.Card, 0, 8)
	for copies := 0; copies < 4; copies++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}
