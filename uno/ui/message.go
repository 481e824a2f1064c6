package ui

import (
	"strings"

	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// MessageWriter narrates a game on a console.
type MessageWriter struct {
	port Port
}

func NewMessageWriter(port Port) *MessageWriter {
	return &MessageWriter{port: port}
}

func (m *MessageWriter) print(message string) {
	m.port.Println(strings.TrimSuffix(message, "\n"))
}

func (m *MessageWriter) Welcome() {
	m.print(msg.Message.Welcome())
}

func (m *MessageWriter) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	m.print(msg.Message.FirstCardPlayed(payload.Card))
}

func (m *MessageWriter) OnCardPlayed(payload event.CardPlayedPayload) {
	m.print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (m *MessageWriter) OnColorPicked(payload event.ColorPickedPayload) {
	m.print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (m *MessageWriter) OnCardsDrawn(payload event.CardsDrawnPayload) {
	m.print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Amount))
}

func (m *MessageWriter) OnPlayerPassed(payload event.PlayerPassedPayload) {
	m.print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (m *MessageWriter) OnTurnSkipped(payload event.TurnSkippedPayload) {
	m.print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (m *MessageWriter) OnDirectionReversed(event.DirectionReversedPayload) {
	m.print(msg.Message.TurnOrderReversed())
}

func (m *MessageWriter) OnIllegalPlay(payload event.IllegalPlayPayload) {
	m.print(msg.Message.IllegalPlay(payload.PlayerName, payload.Card, payload.TopCard))
}

func (m *MessageWriter) OnPenaltyApplied(payload event.PenaltyAppliedPayload) {
	m.print(msg.Message.PenaltyApplied(payload.PlayerName, payload.Amount, payload.Reason, payload.PenaltyCount))
}

func (m *MessageWriter) OnLastCardDeclared(payload event.LastCardDeclaredPayload) {
	m.print(msg.Message.LastCardDeclared(payload.PlayerName))
}

func (m *MessageWriter) OnChallengeResolved(payload event.ChallengeResolvedPayload) {
	m.print(msg.Message.ChallengeResolved(payload.Challenger, payload.Accused, payload.Bluffed))
}

func (m *MessageWriter) OnPlayerDisqualified(payload event.PlayerDisqualifiedPayload) {
	m.print(msg.Message.PlayerDisqualified(payload.PlayerName))
}

func (m *MessageWriter) OnRoundEnded(payload event.RoundEndedPayload) {
	m.print(msg.Message.RoundEnded(payload.Round, payload.Winner, payload.Points))
}

func (m *MessageWriter) OnGameFinished(payload event.GameFinishedPayload) {
	m.print(msg.Message.WinnerFound(payload.Winner))
}
