package database_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	mu      sync.Mutex
	records []database.Record
	err     error
}

func (s *fakeSaver) Save(_ context.Context, record database.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func (s *fakeSaver) saved() []database.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]database.Record(nil), s.records...)
}

func TestRecords(t *testing.T) {
	round := database.RoundRecord(event.RoundScoredPayload{
		SessionID: "s", PlayerName: "Zoe", Round: 2, RoundScore: 40, CumulativeScore: 90, Variant: "quick game",
	})
	assert.Equal(t, database.Record{
		Kind: database.RecordRound, SessionID: "s", PlayerName: "Zoe", Round: 2, RoundScore: 40, CumulativeScore: 90, Variant: "quick game",
	}, round)

	game := database.GameRecord(event.GameFinishedPayload{SessionID: "s", Winner: event.DrawWinner, TotalRounds: 7, Variant: "standard"})
	assert.Equal(t, database.Record{
		Kind: database.RecordGame, SessionID: "s", Round: 7, Winner: "draw", Variant: "standard",
	}, game)
}

func TestDecodeRecord(t *testing.T) {
	scenarios := []struct {
		description string
		payload     string
		valid       bool
	}{
		{"round_record", `{"kind":"round","session_id":"s","player_name":"Zoe","round":1}`, true},
		{"game_record", `{"kind":"game","session_id":"s","winner":"Zoe","round":3}`, true},
		{"not_json", `round`, false},
		{"unknown_kind", `{"kind":"turn","session_id":"s"}`, false},
		{"missing_session", `{"kind":"game"}`, false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := database.DecodeRecord([]byte(scenario.payload))
			if scenario.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestHistorianHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("saves_valid_records", func(t *testing.T) {
		saver := &fakeSaver{}
		historian := database.NewHistorian(nil, "", saver)
		require.NoError(t, historian.Handle(ctx, []byte(`{"kind":"game","session_id":"s","winner":"Zoe","round":3}`)))
		require.Equal(t, []database.Record{{Kind: database.RecordGame, SessionID: "s", Winner: "Zoe", Round: 3}}, saver.saved())
	})

	t.Run("drops_bad_payloads", func(t *testing.T) {
		saver := &fakeSaver{}
		historian := database.NewHistorian(nil, "", saver)
		require.Error(t, historian.Handle(ctx, []byte(`{`)))
		require.Empty(t, saver.saved())
	})

	t.Run("reports_save_failures", func(t *testing.T) {
		failure := errors.New("database is down")
		historian := database.NewHistorian(nil, "", &fakeSaver{err: failure})
		require.ErrorIs(t, historian.Handle(ctx, []byte(`{"kind":"round","session_id":"s"}`)), failure)
	})
}

func TestPublisherToHistorian(t *testing.T) {
	addr := os.Getenv("UNO_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("UNO_TEST_REDIS_ADDR is not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := database.ConnectRedis(ctx, addr, 0)
	require.NoError(t, err)
	defer client.Close()

	queue := "uno_test_" + uuid.NewString()
	defer client.Del(context.Background(), queue)

	publisher := database.NewPublisher(client, queue)
	publisher.OnRoundScored(event.RoundScoredPayload{SessionID: "s", PlayerName: "Zoe", Round: 1, RoundScore: 30, CumulativeScore: 30, Variant: "standard"})
	publisher.OnGameFinished(event.GameFinishedPayload{SessionID: "s", Winner: "Zoe", TotalRounds: 1, Variant: "standard"})

	saver := &fakeSaver{}
	go func() {
		_ = database.NewHistorian(client, queue, saver).Run(ctx)
	}()

	require.Eventually(t, func() bool { return len(saver.saved()) == 2 }, 5*time.Second, 50*time.Millisecond)
	records := saver.saved()
	assert.Equal(t, database.RecordRound, records[0].Kind)
	assert.Equal(t, 30, records[0].CumulativeScore)
	assert.NotZero(t, records[0].Timestamp)
	assert.Equal(t, database.RecordGame, records[1].Kind)
	assert.Equal(t, "Zoe", records[1].Winner)
}

func TestStore(t *testing.T) {
	dsn := os.Getenv("UNO_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("UNO_TEST_PG_DSN is not set")
	}

	ctx := context.Background()
	store, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	sessionID := uuid.NewString()
	zoe, udyr := "Zoe-"+sessionID[:8], "Udyr-"+sessionID[:8]
	records := []database.Record{
		{Kind: database.RecordRound, SessionID: sessionID, PlayerName: zoe, Round: 1, RoundScore: 60, CumulativeScore: 60, Variant: "standard"},
		{Kind: database.RecordRound, SessionID: sessionID, PlayerName: udyr, Round: 1, CumulativeScore: 0, Variant: "standard"},
		{Kind: database.RecordRound, SessionID: sessionID, PlayerName: zoe, Round: 2, CumulativeScore: 60, Variant: "standard"},
		{Kind: database.RecordRound, SessionID: sessionID, PlayerName: udyr, Round: 2, RoundScore: 80, CumulativeScore: 80, Variant: "standard"},
		{Kind: database.RecordGame, SessionID: sessionID, Winner: udyr, Round: 2, Variant: "standard"},
	}
	for _, record := range records {
		require.NoError(t, store.Save(ctx, record))
	}

	standings, err := store.Standings(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, []database.Standing{{PlayerName: udyr, Score: 80}, {PlayerName: zoe, Score: 60}}, standings)

	t.Run("counts_games_played_and_won", func(t *testing.T) {
		stats, err := store.PlayerStats(ctx, udyr)
		require.NoError(t, err)
		require.Equal(t, database.PlayerStats{PlayerName: udyr, GamesPlayed: 1, GamesWon: 1}, stats)

		stats, err = store.PlayerStats(ctx, zoe)
		require.NoError(t, err)
		require.Equal(t, database.PlayerStats{PlayerName: zoe, GamesPlayed: 1, GamesWon: 0}, stats)
	})

	t.Run("finishing_twice_counts_once", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, records[len(records)-1]))
		stats, err := store.PlayerStats(ctx, zoe)
		require.NoError(t, err)
		require.Equal(t, 1, stats.GamesPlayed)
	})

	t.Run("unknown_player_has_no_games", func(t *testing.T) {
		stats, err := store.PlayerStats(ctx, "nobody-"+sessionID)
		require.NoError(t, err)
		require.Equal(t, database.PlayerStats{PlayerName: "nobody-" + sessionID}, stats)
	})
}

func TestQueryResultStrings(t *testing.T) {
	assert.Equal(t, "Zoe: 60", database.Standing{PlayerName: "Zoe", Score: 60}.String())
	assert.Equal(t, "Udyr played 3 games and won 1", database.PlayerStats{PlayerName: "Udyr", GamesPlayed: 3, GamesWon: 1}.String())
}
