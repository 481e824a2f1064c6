package event

import "github.com/ratel-online/uno/uno/card"

type FirstCardPlayedPayload struct {
	Card *card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

func (b *Bus) EmitFirstCardPlayed(payload FirstCardPlayedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(FirstCardPlayedListener); ok {
			listener.OnFirstCardPlayed(payload)
		}
	})
}
