package game

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/rng"
	"github.com/sirupsen/logrus"
)

type Phase int

const (
	PhaseAwaitingStartEffect Phase = iota
	PhaseActive
	PhaseRoundEnd
	PhaseDraw
	PhaseGameEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStartEffect:
		return "awaiting start effect"
	case PhaseActive:
		return "active"
	case PhaseRoundEnd:
		return "round end"
	case PhaseDraw:
		return "draw"
	}
	return "game end"
}

type Result struct {
	// Winner is nil when the game ended without one.
	Winner    *Participant
	Rounds    int
	Standings []*Participant
}

type Game struct {
	options      Options
	seating      []*Participant
	participants map[string]*Participant
	cycler       *Cycler
	deck         *Deck
	referee      *Referee
	bus          *event.Bus
	round        int
	phase        Phase
	winner       *Participant
	log          logrus.FieldLogger
}

func New(participants []*Participant, options Options) (*Game, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}
	if len(participants) < consts.MinPlayers {
		return nil, ErrNotEnoughParticipants
	}
	if len(participants) > consts.MaxPlayers {
		return nil, ErrTooManyParticipants
	}

	names := make([]string, 0, len(participants))
	byName := make(map[string]*Participant, len(participants))
	for _, p := range participants {
		if p == nil || p.Policy() == nil || strings.TrimSpace(p.Name()) == "" {
			return nil, ErrInvalidParticipant
		}
		if _, found := byName[p.Name()]; found {
			return nil, ErrDuplicateParticipant
		}
		byName[p.Name()] = p
		names = append(names, p.Name())
	}

	if options.SessionID == "" {
		options.SessionID = uuid.New().String()
	}
	if options.Rand == nil {
		options.Rand = rng.Crypto{}
	}
	if options.Logger == nil {
		options.Logger = discardLogger()
	}
	if options.NewDeck == nil {
		options.NewDeck = func(_ int, gen rng.Generator) *Deck { return NewDeck(gen) }
	}

	seating := make([]*Participant, len(participants))
	copy(seating, participants)

	return &Game{
		options:      options,
		seating:      seating,
		participants: byName,
		cycler:       NewCycler(names),
		bus:          event.NewBus(),
		phase:        PhaseAwaitingStartEffect,
		log:          options.Logger.WithField("session", options.SessionID),
	}, nil
}

func (g *Game) Events() *event.Bus {
	return g.bus
}

func (g *Game) SessionID() string {
	return g.options.SessionID
}

func (g *Game) Variant() Variant {
	return g.options.Variant
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Direction() int {
	return g.cycler.Direction()
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Current() *Participant {
	return g.participants[g.cycler.Current()]
}

// Participants returns the participants still seated, in seating order.
func (g *Game) Participants() []*Participant {
	participants := make([]*Participant, 0, g.cycler.Len())
	g.cycler.ForEach(func(name string) {
		participants = append(participants, g.participants[name])
	})
	return participants
}

// CardCount counts the cards in both piles and in every seated hand.
func (g *Game) CardCount() int {
	if g.deck == nil {
		return 0
	}
	count := g.deck.DrawPileSize() + g.deck.DiscardPileSize()
	for _, p := range g.Participants() {
		count += p.HandSize()
	}
	return count
}

func (g *Game) State(p *Participant) State {
	handCounts := make(map[string]int)
	scores := make(map[string]int)
	for _, seated := range g.Participants() {
		handCounts[seated.Name()] = seated.HandSize()
		scores[seated.Name()] = seated.TotalScore()
	}

	state := State{
		PlayerName:        p.Name(),
		Round:             g.round,
		Direction:         g.cycler.Direction(),
		CurrentPlayerHand: p.Hand(),
		PlayerSequence:    g.cycler.Elements(),
		PlayerHandCounts:  handCounts,
		Scores:            scores,
	}
	if g.deck != nil {
		state.TopCard = g.deck.Top()
		state.DrawPileSize = g.deck.DrawPileSize()
	}
	return state
}

// Run plays rounds until the game ends.
func (g *Game) Run() (*Result, error) {
	for g.phase != PhaseGameEnd {
		if _, err := g.Step(); err != nil {
			return nil, err
		}
	}
	return g.Result(), nil
}

func (g *Game) Result() *Result {
	standings := make([]*Participant, len(g.seating))
	copy(standings, g.seating)
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalScore() > standings[j].TotalScore()
	})
	return &Result{Winner: g.winner, Rounds: g.round, Standings: standings}
}

// StartRound deals a fresh deck and applies the effect of the first discard.
func (g *Game) StartRound() error {
	if g.phase == PhaseGameEnd {
		return ErrGameOver
	}

	g.round++
	g.phase = PhaseAwaitingStartEffect
	g.deck = g.options.NewDeck(g.round, g.options.Rand)
	g.referee = NewReferee(g.deck, g.bus)
	g.cycler.Reset()

	participants := g.Participants()
	for _, p := range participants {
		p.resetForRound()
	}
	for i := 0; i < g.options.HandSize; i++ {
		for _, p := range participants {
			if dealt := g.deck.Draw(); dealt != nil {
				p.AddCards(dealt)
			}
		}
	}

	first := g.deck.SetupInitialCard()
	if first == nil {
		return ErrNoStartingCard
	}
	g.log.WithFields(logrus.Fields{"round": g.round, "card": first.Rank().String()}).Info("round started")
	g.bus.EmitFirstCardPlayed(event.FirstCardPlayedPayload{Card: first})

	g.applyStartEffect(first)
	if g.phase != PhaseGameEnd {
		g.phase = PhaseActive
	}
	return nil
}

func (g *Game) applyStartEffect(first *card.Card) {
	target := g.Current()
	switch first.Rank() {
	case card.DrawTwo:
		g.drawCards(target, 2)
		g.skipTurn(target)
	case card.Skip:
		g.skipTurn(target)
	case card.Reverse:
		g.reverse()
	case card.Wild:
		g.pickColor(target, first)
	}
}

// Step plays a single turn, starting a new round first when needed.
func (g *Game) Step() (Phase, error) {
	switch g.phase {
	case PhaseGameEnd:
		return g.phase, ErrGameOver
	case PhaseAwaitingStartEffect, PhaseRoundEnd, PhaseDraw:
		if err := g.StartRound(); err != nil {
			return g.phase, err
		}
		if g.phase == PhaseGameEnd {
			return g.phase, nil
		}
	}

	if g.removeDisqualified() {
		return g.phase, nil
	}
	if g.deck.Exhausted() {
		g.endRound(nil)
		return g.phase, nil
	}

	winner := g.playTurn(g.Current())
	if g.phase == PhaseGameEnd {
		return g.phase, nil
	}
	if winner != nil {
		g.endRound(winner)
		return g.phase, nil
	}
	g.cycler.Next()
	return g.phase, nil
}

// removeDisqualified unseats every disqualified participant and returns
// their cards under the draw pile. It reports whether the game ended.
func (g *Game) removeDisqualified() bool {
	for _, p := range g.Participants() {
		if !g.referee.IsDisqualified(p) {
			continue
		}
		g.cycler.Remove(p.Name())
		g.deck.PutBottom(p.hand.Clear()...)
		g.log.WithFields(logrus.Fields{"round": g.round, "player": p.Name(), "penalties": p.PenaltyCount()}).Warn("participant disqualified")
		g.bus.EmitPlayerDisqualified(event.PlayerDisqualifiedPayload{PlayerName: p.Name(), PenaltyCount: p.PenaltyCount()})
	}

	if g.cycler.Len() < consts.MinPlayers {
		g.finish(nil)
		return true
	}
	return false
}

func (g *Game) playTurn(p *Participant) *Participant {
	decision := g.askAction(p)
	if decision.IsDraw() {
		return g.drawTurn(p)
	}

	selected, err := p.hand.At(decision.Index())
	if err != nil {
		return g.drawTurn(p)
	}
	if err := g.referee.ValidatePlay(p, selected, g.deck.Top()); err != nil {
		g.log.WithFields(logrus.Fields{"round": g.round, "player": p.Name()}).WithError(err).Warn("play rejected")
		return nil
	}
	return g.play(p, decision.Index())
}

func (g *Game) askAction(p *Participant) Decision {
	for attempt := 1; attempt <= g.options.MaxDecisionAttempts; attempt++ {
		decision := p.Policy().ChooseAction(g.State(p))
		if decision.IsDraw() || (decision.Index() >= 0 && decision.Index() < p.HandSize()) {
			return decision
		}
		g.log.WithFields(logrus.Fields{"round": g.round, "player": p.Name(), "decision": decision.String()}).Warn("malformed decision")
		if p.Kind() == Automated {
			break
		}
	}
	return Draw()
}

func (g *Game) drawTurn(p *Participant) *Participant {
	drawn := g.deck.Draw()
	if drawn == nil {
		g.bus.EmitPlayerPassed(event.PlayerPassedPayload{PlayerName: p.Name()})
		return nil
	}
	p.AddCards(drawn)
	g.bus.EmitCardsDrawn(event.CardsDrawnPayload{PlayerName: p.Name(), Amount: 1})

	if Playable(drawn, g.deck.Top()) && p.Policy().PlayDrawnCard(drawn, g.State(p)) {
		return g.play(p, p.hand.IndexOf(drawn))
	}
	g.bus.EmitPlayerPassed(event.PlayerPassedPayload{PlayerName: p.Name()})
	return nil
}

// play moves a validated card from the hand to the discard pile and resolves
// what follows. It returns p when the play emptied the hand.
func (g *Game) play(p *Participant, index int) *Participant {
	colorBeforeWild := color.Black
	if top := g.deck.Top(); top != nil {
		colorBeforeWild = top.Color()
	}

	played, err := p.PlayAt(index)
	if err != nil {
		return nil
	}
	handAtPlay := p.Hand()
	g.deck.Play(played)
	g.bus.EmitCardPlayed(event.CardPlayedPayload{PlayerName: p.Name(), Card: played})

	if p.HandSize() == 1 {
		g.declarationStep(p)
	}
	if played.IsAction() {
		g.resolveEffects(p, played, colorBeforeWild, handAtPlay)
	}
	if p.HandSize() == 0 {
		return p
	}
	return nil
}

func (g *Game) declarationStep(p *Participant) {
	if p.Policy().DecideDeclareLast(p.HandSize()) && p.Declare() {
		g.bus.EmitLastCardDeclared(event.LastCardDeclaredPayload{PlayerName: p.Name()})
	}
	if g.referee.CheckDeclarationViolation(p) && rng.Chance(g.options.Rand, g.options.DetectionProbability) {
		g.referee.ApplyPenalty(p, consts.MissedDeclarationPenalty, event.ReasonMissedDeclaration)
		g.log.WithFields(logrus.Fields{"round": g.round, "player": p.Name()}).Info("missed last card declaration")
	}
}

func (g *Game) resolveEffects(acting *Participant, played *card.Card, colorBeforeWild color.Color, handAtPlay []*card.Card) {
	target := g.participants[g.cycler.Peek()]
	drawCancelled := false

	for _, effect := range Effects(played.Rank()) {
		g.log.WithFields(logrus.Fields{"round": g.round, "player": acting.Name(), "effect": effect.String()}).Debug("resolving effect")
		switch effect.Kind {
		case action.PickColor:
			g.pickColor(acting, played)
		case action.Challenge:
			if !target.Policy().ConfirmChallenge(g.State(target)) {
				continue
			}
			outcome := g.referee.ResolveChallenge(target, acting, handAtPlay, colorBeforeWild)
			g.log.WithFields(logrus.Fields{"round": g.round, "challenger": target.Name(), "accused": acting.Name()}).Info(outcome.String())
			if outcome == BluffConfirmed {
				return
			}
			drawCancelled = true
		case action.DrawCards:
			if !drawCancelled {
				g.drawCards(target, effect.Amount)
			}
		case action.SkipTurn:
			g.skipTurn(target)
		case action.ReverseTurns:
			g.reverse()
		}
	}
}

func (g *Game) pickColor(p *Participant, wild *card.Card) {
	chosen := p.Policy().ChooseColor(p.Hand())
	if err := wild.SetColor(chosen); err != nil {
		g.log.WithFields(logrus.Fields{"round": g.round, "player": p.Name()}).WithError(err).Warn("color defaulted to red")
		chosen = color.Red
		_ = wild.SetColor(chosen)
	}
	g.bus.EmitColorPicked(event.ColorPickedPayload{PlayerName: p.Name(), Color: chosen})
}

func (g *Game) drawCards(p *Participant, amount int) {
	drawn := g.deck.DrawN(amount)
	p.AddCards(drawn...)
	g.bus.EmitCardsDrawn(event.CardsDrawnPayload{PlayerName: p.Name(), Amount: len(drawn)})
}

func (g *Game) skipTurn(skipped *Participant) {
	g.cycler.Next()
	g.bus.EmitTurnSkipped(event.TurnSkippedPayload{PlayerName: skipped.Name()})
}

func (g *Game) reverse() {
	g.cycler.Reverse()
	g.bus.EmitDirectionReversed(event.DirectionReversedPayload{Direction: g.cycler.Direction()})
}

// endRound scores the round for winner, or records a draw when winner is nil.
func (g *Game) endRound(winner *Participant) {
	participants := g.Participants()
	awarded := 0
	winnerName := ""
	g.phase = PhaseDraw
	if winner != nil {
		awarded = g.referee.ScoreRound(winner, participants, g.options.Variant)
		winnerName = winner.Name()
		g.phase = PhaseRoundEnd
	}

	g.log.WithFields(logrus.Fields{"round": g.round, "winner": winnerName, "points": awarded}).Info("round ended")
	g.bus.EmitRoundEnded(event.RoundEndedPayload{Round: g.round, Winner: winnerName, Points: awarded})
	for _, p := range participants {
		roundScore := 0
		if p == winner {
			roundScore = awarded
		}
		g.bus.EmitRoundScored(event.RoundScoredPayload{
			SessionID:       g.options.SessionID,
			PlayerName:      p.Name(),
			Round:           g.round,
			RoundScore:      roundScore,
			CumulativeScore: p.TotalScore(),
			Variant:         g.options.Variant.String(),
		})
	}

	if gameWinner := g.referee.CheckGameWinner(participants, g.options.TargetScore); gameWinner != nil {
		g.finish(gameWinner)
	} else if g.options.MaxRounds > 0 && g.round >= g.options.MaxRounds {
		g.finish(nil)
	}
}

// Abort ends the game without a winner. It may be called from a policy while
// a turn is in progress; the turn stops counting once it returns.
func (g *Game) Abort() {
	if g.phase == PhaseGameEnd {
		return
	}
	g.log.WithField("round", g.round).Warn("game aborted")
	g.finish(nil)
}

func (g *Game) finish(winner *Participant) {
	g.phase = PhaseGameEnd
	g.winner = winner

	winnerName := event.DrawWinner
	if winner != nil {
		winnerName = winner.Name()
	}
	g.log.WithFields(logrus.Fields{"rounds": g.round, "winner": winnerName}).Info("game finished")
	g.bus.EmitGameFinished(event.GameFinishedPayload{
		SessionID:   g.options.SessionID,
		Winner:      winnerName,
		TotalRounds: g.round,
		Variant:     g.options.Variant.String(),
	})
}
