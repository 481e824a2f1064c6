package network

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

func (f *Feed) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	f.Broadcast("first_card_played", msg.Message.FirstCardPlayed(payload.Card))
}

func (f *Feed) OnCardPlayed(payload event.CardPlayedPayload) {
	f.Broadcast("card_played", msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (f *Feed) OnColorPicked(payload event.ColorPickedPayload) {
	f.Broadcast("color_picked", msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (f *Feed) OnCardsDrawn(payload event.CardsDrawnPayload) {
	f.Broadcast("cards_drawn", msg.Message.PlayerDrewCards(payload.PlayerName, payload.Amount))
}

func (f *Feed) OnPlayerPassed(payload event.PlayerPassedPayload) {
	f.Broadcast("player_passed", msg.Message.PlayerPassed(payload.PlayerName))
}

func (f *Feed) OnTurnSkipped(payload event.TurnSkippedPayload) {
	f.Broadcast("turn_skipped", msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (f *Feed) OnDirectionReversed(event.DirectionReversedPayload) {
	f.Broadcast("direction_reversed", msg.Message.TurnOrderReversed())
}

func (f *Feed) OnIllegalPlay(payload event.IllegalPlayPayload) {
	f.Broadcast("illegal_play", msg.Message.IllegalPlay(payload.PlayerName, payload.Card, payload.TopCard))
}

func (f *Feed) OnPenaltyApplied(payload event.PenaltyAppliedPayload) {
	f.Broadcast("penalty_applied", msg.Message.PenaltyApplied(payload.PlayerName, payload.Amount, payload.Reason, payload.PenaltyCount))
}

func (f *Feed) OnLastCardDeclared(payload event.LastCardDeclaredPayload) {
	f.Broadcast("last_card_declared", msg.Message.LastCardDeclared(payload.PlayerName))
}

func (f *Feed) OnChallengeResolved(payload event.ChallengeResolvedPayload) {
	f.Broadcast("challenge_resolved", msg.Message.ChallengeResolved(payload.Challenger, payload.Accused, payload.Bluffed))
}

func (f *Feed) OnPlayerDisqualified(payload event.PlayerDisqualifiedPayload) {
	f.Broadcast("player_disqualified", msg.Message.PlayerDisqualified(payload.PlayerName))
}

func (f *Feed) OnRoundEnded(payload event.RoundEndedPayload) {
	f.Broadcast("round_ended", msg.Message.RoundEnded(payload.Round, payload.Winner, payload.Points))
}

func (f *Feed) OnGameFinished(payload event.GameFinishedPayload) {
	f.Broadcast("game_finished", msg.Message.WinnerFound(payload.Winner))
}
