package game

import (
	"github.com/ratel-online/uno/uno/card"
)

type Kind int

const (
	Human Kind = iota
	Automated
)

func (k Kind) String() string {
	if k == Human {
		return "human"
	}
	return "automated"
}

type Participant struct {
	name         string
	kind         Kind
	policy       Policy
	hand         *Hand
	totalScore   int
	penaltyCount int
	declaredLast bool
}

func NewParticipant(name string, kind Kind, policy Policy) *Participant {
	return &Participant{
		name:   name,
		kind:   kind,
		policy: policy,
		hand:   NewHand(),
	}
}

func (p *Participant) Name() string {
	return p.name
}

func (p *Participant) Kind() Kind {
	return p.kind
}

func (p *Participant) Policy() Policy {
	return p.policy
}

func (p *Participant) Hand() []*card.Card {
	return p.hand.Cards()
}

func (p *Participant) HandSize() int {
	return p.hand.Size()
}

func (p *Participant) HandPoints() int {
	return p.hand.Points()
}

func (p *Participant) TotalScore() int {
	return p.totalScore
}

func (p *Participant) PenaltyCount() int {
	return p.penaltyCount
}

func (p *Participant) DeclaredLast() bool {
	return p.declaredLast
}

// AddCards puts cards in the hand. Holding more than one card withdraws a
// previous last card declaration.
func (p *Participant) AddCards(cards ...*card.Card) {
	p.hand.AddCards(cards)
	if p.hand.Size() > 1 {
		p.declaredLast = false
	}
}

func (p *Participant) PlayAt(index int) (*card.Card, error) {
	return p.hand.RemoveAt(index)
}

// Declare records the last card declaration. It only holds with exactly one card in hand.
func (p *Participant) Declare() bool {
	if p.hand.Size() != 1 {
		return false
	}
	p.declaredLast = true
	return true
}

func (p *Participant) AddScore(points int) {
	if points > 0 {
		p.totalScore += points
	}
}

func (p *Participant) addPenalty() {
	p.penaltyCount++
}

func (p *Participant) resetForRound() []*card.Card {
	p.penaltyCount = 0
	p.declaredLast = false
	return p.hand.Clear()
}
