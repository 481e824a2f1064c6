package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/msg"
)

// State is the read-only view of a game handed to a participant's policy.
type State struct {
	PlayerName        string
	Round             int
	Direction         int
	TopCard           *card.Card
	DrawPileSize      int
	CurrentPlayerHand []*card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	Scores            map[string]int
}

func (s State) PlayableIndices() []int {
	return PlayableIndices(s.CurrentPlayerHand, s.TopCard)
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Round %d, last played card: %s", s.Round, s.TopCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction == left {
		order = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Scores: %s", strings.Join(s.Standings(), ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", msg.NumberedCards(s.CurrentPlayerHand)))

	return strings.Join(lines, "\n")
}

// Standings lists "name: score" entries from the highest score down.
func (s State) Standings() []string {
	names := make([]string, len(s.PlayerSequence))
	copy(names, s.PlayerSequence)
	sort.SliceStable(names, func(i, j int) bool {
		return s.Scores[names[i]] > s.Scores[names[j]]
	})

	standings := make([]string, 0, len(names))
	for _, name := range names {
		standings = append(standings, fmt.Sprintf("%s: %d", name, s.Scores[name]))
	}
	return standings
}
