package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/event"
	"github.com/redis/go-redis/v9"
)

func ConnectRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}

// Publisher pushes scoring events to a Redis list. A failed push is logged and
// never reaches the game.
type Publisher struct {
	client  *redis.Client
	queue   string
	timeout time.Duration
}

func NewPublisher(client *redis.Client, queue string) *Publisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Publisher{client: client, queue: queue, timeout: 2 * time.Second}
}

func (p *Publisher) Publish(ctx context.Context, record Record) error {
	if record.Timestamp == 0 {
		record.Timestamp = time.Now().UnixMilli()
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := p.client.RPush(ctx, p.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", p.queue, err)
	}
	return nil
}

func (p *Publisher) OnRoundScored(payload event.RoundScoredPayload) {
	p.publish(RoundRecord(payload))
}

func (p *Publisher) OnGameFinished(payload event.GameFinishedPayload) {
	p.publish(GameRecord(payload))
}

func (p *Publisher) publish(record Record) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := p.Publish(ctx, record); err != nil {
		log.Errorf("session %s: %v\n", record.SessionID, err)
	}
}
