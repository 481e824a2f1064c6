package event

import "reflect"

type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) record(payload interface{}) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) { l.record(payload) }

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) { l.record(payload) }

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) { l.record(payload) }

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) { l.record(payload) }

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) { l.record(payload) }

func (l *DummyListener) OnTurnSkipped(payload TurnSkippedPayload) { l.record(payload) }

func (l *DummyListener) OnDirectionReversed(payload DirectionReversedPayload) { l.record(payload) }

func (l *DummyListener) OnPenaltyApplied(payload PenaltyAppliedPayload) { l.record(payload) }

func (l *DummyListener) OnIllegalPlay(payload IllegalPlayPayload) { l.record(payload) }

func (l *DummyListener) OnPlayerDisqualified(payload PlayerDisqualifiedPayload) { l.record(payload) }

func (l *DummyListener) OnLastCardDeclared(payload LastCardDeclaredPayload) { l.record(payload) }

func (l *DummyListener) OnChallengeResolved(payload ChallengeResolvedPayload) { l.record(payload) }

func (l *DummyListener) OnRoundEnded(payload RoundEndedPayload) { l.record(payload) }

func (l *DummyListener) OnRoundScored(payload RoundScoredPayload) { l.record(payload) }

func (l *DummyListener) OnGameFinished(payload GameFinishedPayload) { l.record(payload) }

// PayloadsOf returns the recorded payloads whose type matches sample.
func (l *DummyListener) PayloadsOf(sample interface{}) []interface{} {
	var matched []interface{}
	for _, payload := range l.receivedPayloads {
		if reflect.TypeOf(payload) == reflect.TypeOf(sample) {
			matched = append(matched, payload)
		}
	}
	return matched
}
