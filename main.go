package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/rng"
	"github.com/ratel-online/uno/uno/simulate"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/sirupsen/logrus"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	configFile := flag.String("config", "config.yaml", "YAML config file, optional")
	games := flag.Int("simulate", 0, "play this many bot-only games and print a report")
	verbose := flag.Bool("verbose", false, "log engine decisions to stderr")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if *games > 0 {
		err = runSimulation(cfg, *games, logger)
	} else {
		err = play(cfg, logger)
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func play(cfg config.Config, logger *logrus.Logger) error {
	strategy, err := player.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}
	variant, err := game.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}

	gen := generator(cfg.Seed)
	console := ui.NewConsole(os.Stdin, color.Stdout)
	participants, err := player.CreatePlayers(cfg.Humans, cfg.Seats, strategy, console, gen)
	if err != nil {
		return err
	}

	options := game.DefaultOptions()
	options.Variant = variant
	options.TargetScore = cfg.TargetScore
	options.DetectionProbability = cfg.DetectionProbability
	options.MaxRounds = cfg.MaxRounds
	options.Rand = gen
	options.Logger = logger
	g, err := game.New(participants, options)
	if err != nil {
		return err
	}

	for _, p := range participants {
		if human, ok := p.Policy().(*player.HumanPlayer); ok {
			human.OnExit(g.Abort)
		}
	}

	writer := ui.NewMessageWriter(console)
	writer.Welcome()
	g.Events().AddListener(writer)

	if cfg.Redis.Addr != "" {
		client, err := database.ConnectRedis(context.Background(), cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Error(err)
		} else {
			defer client.Close()
			g.Events().AddListener(database.NewPublisher(client, cfg.Redis.Queue))
			log.Infof("publishing %s scores of session %s to %s\n", g.Variant(), g.SessionID(), cfg.Redis.Queue)
		}
	}

	if cfg.Spectator.Addr != "" {
		feed := network.NewFeed(cfg.Spectator.Addr)
		async.Async(func() {
			log.Error(feed.Serve())
		})
		g.Events().AddListener(feed)
	}

	result, err := g.Run()
	if err != nil {
		return err
	}
	console.Println(msg.Message.Standings(standings(result.Standings)))
	return nil
}

func runSimulation(cfg config.Config, games int, logger *logrus.Logger) error {
	strategy, err := player.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}
	variant, err := game.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}

	options := simulate.DefaultOptions()
	options.Games = games
	options.Seats = cfg.Seats
	options.Strategy = strategy
	options.Variant = variant
	options.TargetScore = cfg.TargetScore
	options.Seed = cfg.Seed
	options.Logger = logger
	if cfg.MaxRounds > 0 {
		options.MaxRounds = cfg.MaxRounds
	}

	report, err := simulate.Run(context.Background(), options)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(report.Wins))
	for name := range report.Wins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if report.Wins[names[i]] != report.Wins[names[j]] {
			return report.Wins[names[i]] > report.Wins[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintln(color.Stdout, report)
	for _, name := range names {
		fmt.Fprintf(color.Stdout, "%-14s %d\n", name, report.Wins[name])
	}
	return nil
}

func standings(participants []*game.Participant) []string {
	lines := make([]string, 0, len(participants))
	for _, p := range participants {
		lines = append(lines, fmt.Sprintf("%s: %d", p.Name(), p.TotalScore()))
	}
	return lines
}

func generator(seed int64) rng.Generator {
	if seed == 0 {
		return rng.Crypto{}
	}
	return rng.NewSeeded(seed)
}
