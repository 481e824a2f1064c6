package simulate

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/rng"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Games    int
	Seats    int
	Strategy player.Strategy
	Variant  game.Variant
	// MaxRounds keeps a game between bots that never reach the target from running forever.
	MaxRounds   int
	TargetScore int
	// Seed makes every game reproducible. Zero uses crypto randomness.
	Seed        int64
	Parallelism int
	Logger      logrus.FieldLogger
}

func DefaultOptions() Options {
	return Options{
		Games:       100,
		Seats:       consts.DefaultSeats,
		Strategy:    player.StrategyHighestPoints,
		Variant:     game.VariantStandard,
		MaxRounds:   200,
		TargetScore: consts.WinningScore,
		Parallelism: runtime.NumCPU(),
	}
}

// Report aggregates the outcome of many bot-only games.
type Report struct {
	Games  int
	Wins   map[string]int
	Draws  int
	Rounds int
}

func (r Report) String() string {
	return fmt.Sprintf("%d games, %d rounds, %d without a winner", r.Games, r.Rounds, r.Draws)
}

// Run plays independent games side by side. Each game owns its deck, random
// source and event bus.
func Run(ctx context.Context, options Options) (Report, error) {
	if options.Games <= 0 {
		return Report{}, consts.ErrorsInputInvalid
	}

	var (
		mu     sync.Mutex
		report = Report{Wins: map[string]int{}}
	)

	group, ctx := errgroup.WithContext(ctx)
	if options.Parallelism > 0 {
		group.SetLimit(options.Parallelism)
	}
	for i := 0; i < options.Games; i++ {
		index := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := play(index, options)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			report.Games++
			report.Rounds += result.Rounds
			if result.Winner == nil {
				report.Draws++
			} else {
				report.Wins[result.Winner.Name()]++
			}
			return nil
		})
	}

	err := group.Wait()
	return report, err
}

func play(index int, options Options) (*game.Result, error) {
	var gen rng.Generator = rng.Crypto{}
	if options.Seed != 0 {
		gen = rng.NewSeeded(options.Seed + int64(index))
	}

	participants, err := player.CreateBots(options.Seats, options.Strategy, gen)
	if err != nil {
		return nil, err
	}

	gameOptions := game.DefaultOptions()
	gameOptions.Variant = options.Variant
	gameOptions.MaxRounds = options.MaxRounds
	gameOptions.TargetScore = options.TargetScore
	gameOptions.Rand = gen
	if options.Logger != nil {
		gameOptions.Logger = options.Logger.WithField("game", index)
	}

	g, err := game.New(participants, gameOptions)
	if err != nil {
		return nil, err
	}
	audit := &cardAudit{game: g}
	g.Events().AddListener(audit)
	result, err := g.Run()
	if err == nil {
		err = audit.err
	}
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", index, err)
	}
	return result, nil
}

// cardAudit remembers the first round that ended with cards missing from the game.
type cardAudit struct {
	game *game.Game
	err  error
}

func (a *cardAudit) OnRoundEnded(payload event.RoundEndedPayload) {
	if count := a.game.CardCount(); count != consts.DeckSize && a.err == nil {
		a.err = fmt.Errorf("round %d ended with %d cards", payload.Round, count)
	}
}
