package event

type CardsDrawnPayload struct {
	PlayerName string
	Amount     int
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

func (b *Bus) EmitCardsDrawn(payload CardsDrawnPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(CardsDrawnListener); ok {
			listener.OnCardsDrawn(payload)
		}
	})
}
