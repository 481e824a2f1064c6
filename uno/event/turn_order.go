package event

type TurnSkippedPayload struct {
	PlayerName string
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

func (b *Bus) EmitTurnSkipped(payload TurnSkippedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(TurnSkippedListener); ok {
			listener.OnTurnSkipped(payload)
		}
	})
}

type DirectionReversedPayload struct {
	Direction int
}

type DirectionReversedListener interface {
	OnDirectionReversed(DirectionReversedPayload)
}

func (b *Bus) EmitDirectionReversed(payload DirectionReversedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(DirectionReversedListener); ok {
			listener.OnDirectionReversed(payload)
		}
	})
}
