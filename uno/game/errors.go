package game

import (
	"errors"
	"fmt"

	"github.com/ratel-online/uno/uno/card"
)

// ErrNotEnoughParticipants is returned when a game is set up with fewer than two participants
var ErrNotEnoughParticipants = errors.New("need at least two participants to play")

// ErrTooManyParticipants is returned when the table cannot seat everyone
var ErrTooManyParticipants = errors.New("too many participants for one table")

// ErrDuplicateParticipant is returned when two participants share a name
var ErrDuplicateParticipant = errors.New("participant names must be unique")

// ErrInvalidParticipant is returned for a nil participant, a blank name or a missing policy
var ErrInvalidParticipant = errors.New("participant needs a name and a decision policy")

// ErrInvalidOptions is returned when the game options are out of range
var ErrInvalidOptions = errors.New("invalid game options")

// ErrNoStartingCard happens when the draw pile cannot provide a first discard
var ErrNoStartingCard = errors.New("no valid starting card left in the draw pile")

// ErrGameOver is returned when a finished game is asked to continue
var ErrGameOver = errors.New("the game is over")

// ErrIndexOutOfRange happens when a hand position does not exist
var ErrIndexOutOfRange = errors.New("no card at that position in the hand")

// IllegalPlayError rejects a card that matches neither the color nor the rank of the top card
type IllegalPlayError struct {
	Card *card.Card
	Top  *card.Card
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("%s cannot be played on %s", e.Card, e.Top)
}
