package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Policy makes every decision the rules leave to a participant. Human and
// automated participants are driven through the same contract.
type Policy interface {
	ChooseAction(state State) Decision
	ChooseColor(hand []*card.Card) color.Color
	DecideDeclareLast(handSizeAfterPlay int) bool
	ConfirmChallenge(state State) bool
	PlayDrawnCard(drawn *card.Card, state State) bool
}

type Decision struct {
	draw  bool
	index int
}

func Draw() Decision {
	return Decision{draw: true}
}

func PlayAt(index int) Decision {
	return Decision{index: index}
}

func (d Decision) IsDraw() bool {
	return d.draw
}

func (d Decision) Index() int {
	return d.index
}

func (d Decision) String() string {
	if d.draw {
		return "draw"
	}
	return fmt.Sprintf("play #%d", d.index)
}
