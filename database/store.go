package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS game_sessions (
		session_id   TEXT PRIMARY KEY,
		variant      TEXT NOT NULL,
		winner       TEXT,
		total_rounds INT NOT NULL DEFAULT 0,
		started_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		finished_at  TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		session_id       TEXT NOT NULL REFERENCES game_sessions (session_id),
		player_name      TEXT NOT NULL,
		round            INT NOT NULL,
		round_score      INT NOT NULL,
		cumulative_score INT NOT NULL,
		variant          TEXT NOT NULL,
		recorded_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (session_id, player_name, round)
	)`,
	`CREATE TABLE IF NOT EXISTS player_stats (
		player_name  TEXT PRIMARY KEY,
		games_played INT NOT NULL DEFAULT 0,
		games_won    INT NOT NULL DEFAULT 0,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

type Standing struct {
	PlayerName string
	Score      int
}

func (s Standing) String() string {
	return fmt.Sprintf("%s: %d", s.PlayerName, s.Score)
}

// PlayerStats counts the finished games a player took part in and won.
type PlayerStats struct {
	PlayerName  string
	GamesPlayed int
	GamesWon    int
}

func (p PlayerStats) String() string {
	return fmt.Sprintf("%s played %d games and won %d", p.PlayerName, p.GamesPlayed, p.GamesWon)
}

// Store keeps round and game results in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Migrate creates the tables when they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	for _, statement := range schema {
		if _, err := s.pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Save stores a record according to its kind.
func (s *Store) Save(ctx context.Context, record Record) error {
	switch record.Kind {
	case RecordRound:
		return s.SaveRound(ctx, record)
	case RecordGame:
		return s.FinalizeSession(ctx, record)
	}
	return fmt.Errorf("invalid record kind '%s'", record.Kind)
}

func (s *Store) SaveRound(ctx context.Context, record Record) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO game_sessions (session_id, variant)
			VALUES ($1, $2)
			ON CONFLICT (session_id) DO NOTHING
		`, record.SessionID, record.Variant); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO sessions (session_id, player_name, round, round_score, cumulative_score, variant)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (session_id, player_name, round)
			DO UPDATE SET round_score = EXCLUDED.round_score, cumulative_score = EXCLUDED.cumulative_score
		`, record.SessionID, record.PlayerName, record.Round, record.RoundScore, record.CumulativeScore, record.Variant)
		return err
	})
}

// FinalizeSession closes the session and credits every player who scored in it.
// A session that was already finished is updated without counting its players twice.
func (s *Store) FinalizeSession(ctx context.Context, record Record) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var finished bool
		err := tx.QueryRow(ctx, `
			SELECT finished_at IS NOT NULL FROM game_sessions WHERE session_id = $1 FOR UPDATE
		`, record.SessionID).Scan(&finished)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO game_sessions (session_id, variant, winner, total_rounds, finished_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (session_id)
			DO UPDATE SET winner = EXCLUDED.winner, total_rounds = EXCLUDED.total_rounds, finished_at = NOW()
		`, record.SessionID, record.Variant, record.Winner, record.Round); err != nil {
			return err
		}
		if finished {
			return nil
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO player_stats (player_name, games_played, games_won)
			SELECT DISTINCT player_name, 1, CASE WHEN player_name = $2 THEN 1 ELSE 0 END
			FROM sessions
			WHERE session_id = $1
			ON CONFLICT (player_name)
			DO UPDATE SET games_played = player_stats.games_played + 1,
				games_won = player_stats.games_won + EXCLUDED.games_won,
				updated_at = NOW()
		`, record.SessionID, record.Winner)
		return err
	})
}

// Standings returns every participant's latest cumulative score, highest first.
func (s *Store) Standings(ctx context.Context, sessionID string) ([]Standing, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT player_name, MAX(cumulative_score)
		FROM sessions
		WHERE session_id = $1
		GROUP BY player_name
		ORDER BY MAX(cumulative_score) DESC, player_name
	`, sessionID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[Standing])
}

// PlayerStats returns zero counts for a player who never finished a game.
func (s *Store) PlayerStats(ctx context.Context, playerName string) (PlayerStats, error) {
	stats := PlayerStats{PlayerName: playerName}
	err := s.pool.QueryRow(ctx, `
		SELECT games_played, games_won FROM player_stats WHERE player_name = $1
	`, playerName).Scan(&stats.GamesPlayed, &stats.GamesWon)
	if errors.Is(err, pgx.ErrNoRows) {
		return stats, nil
	}
	return stats, err
}

func (s *Store) Close() {
	s.pool.Close()
}
