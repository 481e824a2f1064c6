package msg

import (
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card *card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card *card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) IllegalPlay(playerName string, played *card.Card, top *card.Card) string {
	return Sprintfln("%s cannot play %s on %s!", playerName, played, top)
}

func (m MessageWriter) PenaltyApplied(playerName string, amount int, reason event.PenaltyReason, penaltyCount int) string {
	return Sprintfln("%s draws %d penalty card(s) for %s (penalty %d)!", playerName, amount, reason, penaltyCount)
}

func (m MessageWriter) LastCardDeclared(playerName string) string {
	return Sprintfln("%s shouts UNO!", playerName)
}

func (m MessageWriter) ChallengeResolved(challenger string, accused string, bluffed bool) string {
	if bluffed {
		return Sprintfln("%s caught %s bluffing!", challenger, accused)
	}
	return Sprintfln("%s challenged %s and lost!", challenger, accused)
}

func (m MessageWriter) PlayerDisqualified(playerName string) string {
	return Sprintfln("%s is disqualified after too many penalties!", playerName)
}

func (m MessageWriter) RoundEnded(round int, winner string, points int) string {
	if winner == "" {
		return Sprintfln("Round %d ends in a draw, nobody scores.", round)
	}
	return Sprintfln("%s wins round %d and scores %d points!", winner, round, points)
}

func (m MessageWriter) Standings(standings []string) string {
	return Sprintfln("Scores: %s", strings.Join(standings, ", "))
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	if playerName == event.DrawWinner || playerName == "" {
		return Sprintln("The game ends without a winner.")
	}
	return Sprintfln("%s wins!", playerName)
}
