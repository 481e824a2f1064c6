package game_test

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/rng"
)

// scriptedPolicy replays a fixed list of decisions and draws once it runs out.
type scriptedPolicy struct {
	decisions []game.Decision
	color     color.Color
	declare   bool
	challenge bool
	playDrawn bool

	challengeOffers int
}

func (p *scriptedPolicy) ChooseAction(game.State) game.Decision {
	if len(p.decisions) == 0 {
		return game.Draw()
	}
	decision := p.decisions[0]
	p.decisions = p.decisions[1:]
	return decision
}

func (p *scriptedPolicy) ChooseColor([]*card.Card) color.Color {
	if p.color == nil {
		return color.Red
	}
	return p.color
}

func (p *scriptedPolicy) DecideDeclareLast(int) bool {
	return p.declare
}

func (p *scriptedPolicy) ConfirmChallenge(game.State) bool {
	p.challengeOffers++
	return p.challenge
}

func (p *scriptedPolicy) PlayDrawnCard(*card.Card, game.State) bool {
	return p.playDrawn
}

// firstLegalPolicy plays the first legal card it holds.
type firstLegalPolicy struct{}

func (firstLegalPolicy) ChooseAction(state game.State) game.Decision {
	playable := state.PlayableIndices()
	if len(playable) == 0 {
		return game.Draw()
	}
	return game.PlayAt(playable[0])
}

func (firstLegalPolicy) ChooseColor(hand []*card.Card) color.Color {
	for _, c := range hand {
		if color.IsPlayable(c.Color()) {
			return c.Color()
		}
	}
	return color.Blue
}

func (firstLegalPolicy) DecideDeclareLast(int) bool { return true }

func (firstLegalPolicy) ConfirmChallenge(game.State) bool { return false }

func (firstLegalPolicy) PlayDrawnCard(*card.Card, game.State) bool { return true }

func stackedDeck(cards ...*card.Card) func(int, rng.Generator) *game.Deck {
	return func(_ int, gen rng.Generator) *game.Deck {
		return game.NewStackedDeck(gen, cards...)
	}
}

func fillerCards(amount int) []*card.Card {
	cards := make([]*card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		cards = append(cards, card.NewNumberCard(color.Yellow, 1+i%9))
	}
	return cards
}

func participants(policies ...game.Policy) []*game.Participant {
	names := []string{"A", "B", "C", "D"}
	seated := make([]*game.Participant, 0, len(policies))
	for i, policy := range policies {
		seated = append(seated, game.NewParticipant(names[i], game.Automated, policy))
	}
	return seated
}

func testOptions() game.Options {
	options := game.DefaultOptions()
	options.Rand = rng.NewSeeded(1)
	options.SessionID = "test-session"
	return options
}

// quittingPolicy ends the game from inside one of its decisions.
type quittingPolicy struct {
	scriptedPolicy
	quit        func()
	quitOnColor bool
}

func (p *quittingPolicy) ChooseAction(state game.State) game.Decision {
	if !p.quitOnColor {
		p.quit()
	}
	return p.scriptedPolicy.ChooseAction(state)
}

func (p *quittingPolicy) ChooseColor(hand []*card.Card) color.Color {
	if p.quitOnColor {
		p.quit()
	}
	return p.scriptedPolicy.ChooseColor(hand)
}
