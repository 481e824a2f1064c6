package event

type LastCardDeclaredPayload struct {
	PlayerName string
}

type LastCardDeclaredListener interface {
	OnLastCardDeclared(LastCardDeclaredPayload)
}

func (b *Bus) EmitLastCardDeclared(payload LastCardDeclaredPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(LastCardDeclaredListener); ok {
			listener.OnLastCardDeclared(payload)
		}
	})
}

type ChallengeResolvedPayload struct {
	Challenger string
	Accused    string
	Bluffed    bool
}

type ChallengeResolvedListener interface {
	OnChallengeResolved(ChallengeResolvedPayload)
}

func (b *Bus) EmitChallengeResolved(payload ChallengeResolvedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(ChallengeResolvedListener); ok {
			listener.OnChallengeResolved(payload)
		}
	})
}
