package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type ChallengeOutcome int

const (
	BluffConfirmed ChallengeOutcome = iota + 1
	BluffDenied
)

func (o ChallengeOutcome) String() string {
	if o == BluffConfirmed {
		return "bluff confirmed"
	}
	return "bluff denied"
}

// Referee enforces the rules of a round. Penalty cards come from its deck.
type Referee struct {
	deck *Deck
	bus  *event.Bus
}

func NewReferee(deck *Deck, bus *event.Bus) *Referee {
	return &Referee{deck: deck, bus: bus}
}

// Check validates a play without touching any state.
func (r *Referee) Check(c *card.Card, top *card.Card) error {
	if !Playable(c, top) {
		return &IllegalPlayError{Card: c, Top: top}
	}
	return nil
}

// ValidatePlay checks a play and charges a one card penalty when it is rejected.
// A rejected card must not be played.
func (r *Referee) ValidatePlay(p *Participant, c *card.Card, top *card.Card) error {
	err := r.Check(c, top)
	if err != nil {
		r.bus.EmitIllegalPlay(event.IllegalPlayPayload{PlayerName: p.Name(), Card: c, TopCard: top})
		r.ApplyPenalty(p, consts.IllegalPlayPenalty, event.ReasonIllegalPlay)
	}
	return err
}

// WasBluff reports whether a wild draw four was played while the hand that
// remained held a card of the color it replaced.
func WasBluff(handAtPlay []*card.Card, colorBeforeWild color.Color) bool {
	return HasColor(handAtPlay, colorBeforeWild)
}

func (r *Referee) ResolveChallenge(challenger, accused *Participant, handAtPlay []*card.Card, colorBeforeWild color.Color) ChallengeOutcome {
	outcome := BluffDenied
	if WasBluff(handAtPlay, colorBeforeWild) {
		outcome = BluffConfirmed
		r.ApplyPenalty(accused, consts.BluffPenalty, event.ReasonBluff)
	} else {
		r.ApplyPenalty(challenger, consts.FailedChallengePenalty, event.ReasonFailedChallenge)
	}

	r.bus.EmitChallengeResolved(event.ChallengeResolvedPayload{
		Challenger: challenger.Name(),
		Accused:    accused.Name(),
		Bluffed:    outcome == BluffConfirmed,
	})
	return outcome
}

func (r *Referee) CheckDeclarationViolation(p *Participant) bool {
	return p.HandSize() == 1 && !p.DeclaredLast()
}

// ApplyPenalty draws amount cards into the participant's hand and counts one
// penalty however many cards were drawn.
func (r *Referee) ApplyPenalty(p *Participant, amount int, reason event.PenaltyReason) []*card.Card {
	drawn := r.deck.DrawN(amount)
	p.AddCards(drawn...)
	p.addPenalty()

	r.bus.EmitPenaltyApplied(event.PenaltyAppliedPayload{
		PlayerName:   p.Name(),
		Amount:       len(drawn),
		Reason:       reason,
		PenaltyCount: p.PenaltyCount(),
	})
	return drawn
}

func (r *Referee) IsDisqualified(p *Participant) bool {
	return p.PenaltyCount() >= consts.MaxPenalties
}

// RoundPoints sums the hands left with everyone but the winner.
func (r *Referee) RoundPoints(winner *Participant, participants []*Participant) int {
	points := 0
	for _, p := range participants {
		if p != winner {
			points += p.HandPoints()
		}
	}
	return points
}

// ScoreRound credits the winner with the round points scaled by the variant.
func (r *Referee) ScoreRound(winner *Participant, participants []*Participant, variant Variant) int {
	awarded := variant.Apply(r.RoundPoints(winner, participants))
	winner.AddScore(awarded)
	return awarded
}

func (r *Referee) CheckGameWinner(participants []*Participant, target int) *Participant {
	for _, p := range participants {
		if p.TotalScore() >= target {
			return p
		}
	}
	return nil
}
