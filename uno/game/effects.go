package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
)

// Effects lists what a played card does, in the order it happens. Draws and
// skips target the participant whose turn comes next.
func Effects(rank card.Rank) []action.Action {
	switch rank {
	case card.DrawTwo:
		return []action.Action{
			action.Draw(2),
			action.Of(action.SkipTurn),
		}
	case card.Reverse:
		return []action.Action{action.Of(action.ReverseTurns)}
	case card.Skip:
		return []action.Action{action.Of(action.SkipTurn)}
	case card.Wild:
		return []action.Action{action.Of(action.PickColor)}
	case card.WildDrawFour:
		return []action.Action{
			action.Of(action.PickColor),
			action.Of(action.Challenge),
			action.Draw(4),
			action.Of(action.SkipTurn),
		}
	}
	return nil
}
