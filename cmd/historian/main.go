// Command historian moves score records from the Redis queue into Postgres.
// With -standings or -stats it answers the query from Postgres and exits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/uno/msg"
)

type query struct {
	session string
	player  string
}

func (q query) empty() bool {
	return q.session == "" && q.player == ""
}

func main() {
	configFile := flag.String("config", "config.yaml", "YAML config file, optional")
	var q query
	flag.StringVar(&q.session, "standings", "", "print the standings of a session and exit")
	flag.StringVar(&q.player, "stats", "", "print the games played and won by a player and exit")
	flag.Parse()

	if err := run(*configFile, q); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(err)
		os.Exit(1)
	}
	if q.empty() {
		log.Info("historian stopped")
	}
}

func run(configFile string, q query) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("historian needs postgres.dsn")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	if !q.empty() {
		return answer(ctx, store, q)
	}

	if cfg.Redis.Addr == "" {
		return errors.New("historian needs redis.addr")
	}
	client, err := database.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer client.Close()

	return database.NewHistorian(client, cfg.Redis.Queue, store).Run(ctx)
}

func answer(ctx context.Context, store *database.Store, q query) error {
	if q.session != "" {
		standings, err := store.Standings(ctx, q.session)
		if err != nil {
			return err
		}
		if len(standings) == 0 {
			return fmt.Errorf("no scores recorded for session %s", q.session)
		}
		lines := make([]string, 0, len(standings))
		for _, standing := range standings {
			lines = append(lines, standing.String())
		}
		fmt.Print(msg.Message.Standings(lines))
	}
	if q.player != "" {
		stats, err := store.PlayerStats(ctx, q.player)
		if err != nil {
			return err
		}
		fmt.Println(stats)
	}
	return nil
}
