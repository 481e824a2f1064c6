package event

type PlayerPassedPayload struct {
	PlayerName string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

func (b *Bus) EmitPlayerPassed(payload PlayerPassedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(PlayerPassedListener); ok {
			listener.OnPlayerPassed(payload)
		}
	})
}
