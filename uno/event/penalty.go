package event

import "github.com/ratel-online/uno/uno/card"

type PenaltyReason string

const (
	ReasonIllegalPlay       PenaltyReason = "illegal play"
	ReasonMissedDeclaration PenaltyReason = "missed last card declaration"
	ReasonBluff             PenaltyReason = "bluff called"
	ReasonFailedChallenge   PenaltyReason = "failed challenge"
)

type PenaltyAppliedPayload struct {
	PlayerName   string
	Amount       int
	Reason       PenaltyReason
	PenaltyCount int
}

type PenaltyAppliedListener interface {
	OnPenaltyApplied(PenaltyAppliedPayload)
}

func (b *Bus) EmitPenaltyApplied(payload PenaltyAppliedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(PenaltyAppliedListener); ok {
			listener.OnPenaltyApplied(payload)
		}
	})
}

type IllegalPlayPayload struct {
	PlayerName string
	Card       *card.Card
	TopCard    *card.Card
}

type IllegalPlayListener interface {
	OnIllegalPlay(IllegalPlayPayload)
}

func (b *Bus) EmitIllegalPlay(payload IllegalPlayPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(IllegalPlayListener); ok {
			listener.OnIllegalPlay(payload)
		}
	})
}

type PlayerDisqualifiedPayload struct {
	PlayerName   string
	PenaltyCount int
}

type PlayerDisqualifiedListener interface {
	OnPlayerDisqualified(PlayerDisqualifiedPayload)
}

func (b *Bus) EmitPlayerDisqualified(payload PlayerDisqualifiedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(PlayerDisqualifiedListener); ok {
			listener.OnPlayerDisqualified(payload)
		}
	})
}
