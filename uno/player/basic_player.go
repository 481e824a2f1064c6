package player

import (
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/rng"
)

type Strategy int

const (
	StrategyRandom Strategy = iota + 1
	StrategyActionFirst
	StrategyHighestPoints
)

func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategyActionFirst:
		return "action first"
	case StrategyHighestPoints:
		return "highest points"
	}
	return "unknown"
}

// ParseDifficulty maps easy, medium and hard to a bot strategy.
func ParseDifficulty(difficulty string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case consts.DifficultyEasy:
		return StrategyRandom, nil
	case consts.DifficultyMedium:
		return StrategyActionFirst, nil
	case consts.DifficultyHard:
		return StrategyHighestPoints, nil
	}
	return 0, consts.ErrorsDifficultyInvalid
}

// Bot is an automated decision policy.
type Bot struct {
	strategy      Strategy
	gen           rng.Generator
	forgetRate    float64
	drawnCardRate float64
}

func NewBot(strategy Strategy, gen rng.Generator) *Bot {
	bot := &Bot{strategy: strategy, gen: gen, drawnCardRate: 1}
	if strategy == StrategyRandom {
		bot.forgetRate = 0.1
		bot.drawnCardRate = 0.7
	}
	return bot
}

func (b *Bot) Strategy() Strategy {
	return b.strategy
}

// SetDrawnCardRate sets the chance of playing a legal card right after drawing it.
func (b *Bot) SetDrawnCardRate(rate float64) *Bot {
	b.drawnCardRate = rate
	return b
}

// SetForgetRate sets the chance of forgetting to declare the last card.
func (b *Bot) SetForgetRate(rate float64) *Bot {
	b.forgetRate = rate
	return b
}

func (b *Bot) ChooseAction(state game.State) game.Decision {
	playable := state.PlayableIndices()
	if len(playable) == 0 {
		return game.Draw()
	}

	switch b.strategy {
	case StrategyActionFirst:
		return game.PlayAt(pickActionFirst(b.gen, state.CurrentPlayerHand, playable))
	case StrategyHighestPoints:
		return game.PlayAt(pickHighestPoints(state.CurrentPlayerHand, playable))
	}
	return game.PlayAt(pickRandom(b.gen, playable))
}

func (b *Bot) ChooseColor(hand []*card.Card) color.Color {
	if chosen := mostFrequentColor(hand); chosen != nil {
		return chosen
	}
	return color.Playable[b.gen.Intn(len(color.Playable))]
}

func (b *Bot) DecideDeclareLast(int) bool {
	return !rng.Chance(b.gen, b.forgetRate)
}

func (b *Bot) ConfirmChallenge(game.State) bool {
	return false
}

func (b *Bot) PlayDrawnCard(*card.Card, game.State) bool {
	return rng.Chance(b.gen, b.drawnCardRate)
}
