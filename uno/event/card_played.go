package event

import "github.com/ratel-online/uno/uno/card"

type CardPlayedPayload struct {
	PlayerName string
	Card       *card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

func (b *Bus) EmitCardPlayed(payload CardPlayedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(CardPlayedListener); ok {
			listener.OnCardPlayed(payload)
		}
	})
}
