package action

import "fmt"

type Kind int

const (
	PickColor Kind = iota + 1
	Challenge
	DrawCards
	SkipTurn
	ReverseTurns
)

func (k Kind) String() string {
	switch k {
	case PickColor:
		return "pick color"
	case Challenge:
		return "challenge"
	case DrawCards:
		return "draw cards"
	case SkipTurn:
		return "skip turn"
	case ReverseTurns:
		return "reverse turns"
	}
	return "unknown"
}

// Action is one step of a card's effect. Amount is only set for DrawCards.
type Action struct {
	Kind   Kind
	Amount int
}

func Of(kind Kind) Action {
	return Action{Kind: kind}
}

func Draw(amount int) Action {
	return Action{Kind: DrawCards, Amount: amount}
}

func (a Action) String() string {
	if a.Kind == DrawCards {
		return fmt.Sprintf("%s (%d)", a.Kind, a.Amount)
	}
	return a.Kind.String()
}
