package card

import (
	"errors"
	"fmt"

	"github.com/ratel-online/uno/uno/card/color"
)

var (
	// ErrNotWild is returned when a color is chosen for a card that is not wild.
	ErrNotWild = errors.New("only wild cards can change color")
	// ErrInvalidColor is returned when a wild card is given a color that cannot be played.
	ErrInvalidColor = errors.New("wild cards can only take red, yellow, green or blue")
)

type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	DrawTwo
	Reverse
	Skip
	Wild
	WildDrawFour
)

func (r Rank) IsNumber() bool {
	return r >= Zero && r <= Nine
}

func (r Rank) IsAction() bool {
	return r > Nine && r <= WildDrawFour
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawFour
}

func (r Rank) Points() int {
	switch {
	case r.IsNumber():
		return int(r)
	case r.IsWild():
		return 50
	default:
		return 20
	}
}

func (r Rank) String() string {
	switch r {
	case DrawTwo:
		return "+2!"
	case Reverse:
		return "<=>"
	case Skip:
		return "(/)"
	case Wild:
		return "(*)"
	case WildDrawFour:
		return "+4!"
	}
	return fmt.Sprintf("[%d]", int(r))
}

type Card struct {
	color  color.Color
	rank   Rank
	points int
}

func newCard(c color.Color, r Rank) *Card {
	if r.IsWild() {
		c = color.Black
	} else if !color.IsPlayable(c) {
		panic(fmt.Sprintf("card %s needs a playable color", r))
	}
	return &Card{color: c, rank: r, points: r.Points()}
}

func NewNumberCard(c color.Color, number int) *Card {
	if number < 0 || number > 9 {
		panic(fmt.Sprintf("invalid card number %d", number))
	}
	return newCard(c, Rank(number))
}

func NewDrawTwoCard(c color.Color) *Card {
	return newCard(c, DrawTwo)
}

func NewReverseCard(c color.Color) *Card {
	return newCard(c, Reverse)
}

func NewSkipCard(c color.Color) *Card {
	return newCard(c, Skip)
}

func NewWildCard() *Card {
	return newCard(color.Black, Wild)
}

func NewWildDrawFourCard() *Card {
	return newCard(color.Black, WildDrawFour)
}

func (c *Card) Color() color.Color {
	return c.color
}

func (c *Card) Rank() Rank {
	return c.rank
}

func (c *Card) Points() int {
	return c.points
}

func (c *Card) IsWild() bool {
	return c.rank.IsWild()
}

func (c *Card) IsAction() bool {
	return c.rank.IsAction()
}

func (c *Card) SetColor(chosen color.Color) error {
	if !c.IsWild() {
		return ErrNotWild
	}
	if !color.IsPlayable(chosen) {
		return ErrInvalidColor
	}
	c.color = chosen
	return nil
}

// ResetColor turns a wild card back to black. Other cards are untouched.
func (c *Card) ResetColor() {
	if c.IsWild() {
		c.color = color.Black
	}
}

func (c *Card) Equal(other *Card) bool {
	return other != nil && c.rank == other.rank && c.color == other.color
}

func (c *Card) String() string {
	return c.color.Paint(c.rank.String())
}
