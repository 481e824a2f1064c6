package database

import (
	"context"
	"errors"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/redis/go-redis/v9"
)

type Saver interface {
	Save(ctx context.Context, record Record) error
}

// Historian moves records from the Redis list into a Saver.
type Historian struct {
	client *redis.Client
	queue  string
	saver  Saver
	wait   time.Duration
}

func NewHistorian(client *redis.Client, queue string, saver Saver) *Historian {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Historian{client: client, queue: queue, saver: saver, wait: 3 * time.Second}
}

// Run blocks until ctx is cancelled.
func (h *Historian) Run(ctx context.Context) error {
	log.Infof("historian listening on %s\n", h.queue)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := h.client.BLPop(ctx, h.wait, h.queue).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Errorf("BLPop: %v\n", err)
			time.Sleep(time.Second)
			continue
		}
		if len(res) < 2 {
			continue
		}

		_ = h.Handle(ctx, []byte(res[1]))
	}
}

// Handle decodes one payload and saves it. Bad payloads are logged and dropped.
func (h *Historian) Handle(ctx context.Context, payload []byte) error {
	record, err := DecodeRecord(payload)
	if err != nil {
		log.Errorf("%v\n", err)
		return err
	}
	if err := h.saver.Save(ctx, record); err != nil {
		log.Errorf("save %s record for session %s: %v\n", record.Kind, record.SessionID, err)
		return err
	}
	return nil
}
