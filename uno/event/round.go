package event

type RoundEndedPayload struct {
	Round int
	// Winner is empty when the round ended in a draw.
	Winner string
	Points int
}

type RoundEndedListener interface {
	OnRoundEnded(RoundEndedPayload)
}

func (b *Bus) EmitRoundEnded(payload RoundEndedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(RoundEndedListener); ok {
			listener.OnRoundEnded(payload)
		}
	})
}

type RoundScoredPayload struct {
	SessionID       string
	PlayerName      string
	Round           int
	RoundScore      int
	CumulativeScore int
	Variant         string
}

type RoundScoredListener interface {
	OnRoundScored(RoundScoredPayload)
}

func (b *Bus) EmitRoundScored(payload RoundScoredPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(RoundScoredListener); ok {
			listener.OnRoundScored(payload)
		}
	})
}

// DrawWinner is reported as the winner of a game that ended without one.
const DrawWinner = "draw"

type GameFinishedPayload struct {
	SessionID   string
	Winner      string
	TotalRounds int
	Variant     string
}

type GameFinishedListener interface {
	OnGameFinished(GameFinishedPayload)
}

func (b *Bus) EmitGameFinished(payload GameFinishedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(GameFinishedListener); ok {
			listener.OnGameFinished(payload)
		}
	})
}
