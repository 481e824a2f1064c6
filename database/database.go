package database

import (
	"encoding/json"
	"fmt"

	"github.com/ratel-online/uno/uno/event"
)

// DefaultQueue is the Redis list records travel through on their way to Postgres.
const DefaultQueue = "uno_scores"

type RecordKind string

const (
	RecordRound RecordKind = "round"
	RecordGame  RecordKind = "game"
)

// Record is the wire form of a scoring event. Round records carry one
// participant's score, game records carry the final result.
type Record struct {
	Kind            RecordKind `json:"kind"`
	SessionID       string     `json:"session_id"`
	PlayerName      string     `json:"player_name,omitempty"`
	Round           int        `json:"round"`
	RoundScore      int        `json:"round_score"`
	CumulativeScore int        `json:"cumulative_score"`
	Variant         string     `json:"variant"`
	Winner          string     `json:"winner,omitempty"`
	Timestamp       int64      `json:"timestamp"`
}

func RoundRecord(payload event.RoundScoredPayload) Record {
	return Record{
		Kind:            RecordRound,
		SessionID:       payload.SessionID,
		PlayerName:      payload.PlayerName,
		Round:           payload.Round,
		RoundScore:      payload.RoundScore,
		CumulativeScore: payload.CumulativeScore,
		Variant:         payload.Variant,
	}
}

func GameRecord(payload event.GameFinishedPayload) Record {
	return Record{
		Kind:      RecordGame,
		SessionID: payload.SessionID,
		Round:     payload.TotalRounds,
		Variant:   payload.Variant,
		Winner:    payload.Winner,
	}
}

func DecodeRecord(data []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("invalid record: %w", err)
	}
	if record.Kind != RecordRound && record.Kind != RecordGame {
		return record, fmt.Errorf("invalid record kind '%s'", record.Kind)
	}
	if record.SessionID == "" {
		return record, fmt.Errorf("record without session id")
	}
	return record, nil
}
