package player

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

// HumanPlayer asks a person at the console for every decision. An answer that
// cannot be read falls back to the safe choice: draw, red, or no. Once the
// player has exited, every decision takes that choice without asking.
type HumanPlayer struct {
	name   string
	port   ui.Port
	onExit func()
	exited bool
}

func NewHumanPlayer(name string, port ui.Port) *HumanPlayer {
	return &HumanPlayer{name: name, port: port}
}

// OnExit registers what to do when the player types exit.
func (p *HumanPlayer) OnExit(onExit func()) *HumanPlayer {
	p.onExit = onExit
	return p
}

func (p *HumanPlayer) Exited() bool {
	return p.exited
}

func (p *HumanPlayer) ChooseAction(state game.State) game.Decision {
	if p.exited {
		return game.Draw()
	}
	p.port.Println(msg.Message.HumanPlayerTurnStarted(p.name))
	p.port.Println(state.String())

	index, err := ui.PromptIntegerInRange(p.port, 0, len(state.CurrentPlayerHand), "Select a card to play (0 to draw):")
	if err != nil {
		p.fallback(err, "A card will be drawn.")
		return game.Draw()
	}
	if index == 0 {
		return game.Draw()
	}
	return game.PlayAt(index - 1)
}

func (p *HumanPlayer) ChooseColor([]*card.Card) color.Color {
	if p.exited {
		return color.Red
	}
	chosen, err := ui.PromptColor(p.port)
	if err != nil {
		p.fallback(err, fmt.Sprintf("%s will be picked.", color.Red))
		return color.Red
	}
	return chosen
}

func (p *HumanPlayer) DecideDeclareLast(int) bool {
	return p.askYesNo("You have one card left. Shout UNO?")
}

func (p *HumanPlayer) ConfirmChallenge(state game.State) bool {
	return p.askYesNo(fmt.Sprintf("%s was played on you. Challenge it?", state.TopCard))
}

func (p *HumanPlayer) PlayDrawnCard(drawn *card.Card, _ game.State) bool {
	return p.askYesNo(fmt.Sprintf("You drew %s. Play it?", drawn))
}

func (p *HumanPlayer) askYesNo(question string) bool {
	if p.exited {
		return false
	}
	answer, err := ui.PromptYesNo(p.port, question)
	if err != nil {
		p.fallback(err, "Taking that as a no.")
		return false
	}
	return answer
}

func (p *HumanPlayer) fallback(err error, notice string) {
	if err == consts.ErrorsExist {
		p.exited = true
		if p.onExit != nil {
			p.onExit()
		}
		return
	}
	p.port.Println(notice)
}
