package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	flashKeyPrefix = "flash:"
	// flashTTL bounds how long an unread flash survives; a flash is
	// normally consumed by the very next page render.
	flashTTL = 10 * time.Minute
)

// Flash is a one-shot user-facing notice shown on the next rendered page.
type Flash struct {
	Category string `json:"category"` // success, error or info
	Message  string `json:"message"`
}

// FlashStore queues flash messages per browser (keyed by a flash cookie ID).
// Pop drains the queue: each flash is shown at most once.
type FlashStore interface {
	Push(ctx context.Context, id string, f Flash) error
	Pop(ctx context.Context, id string) ([]Flash, error)
}

// RedisFlashStore keeps flash queues as Redis lists under "flash:<id>".
type RedisFlashStore struct {
	client *redis.Client
}

func NewRedisFlashStore(client *redis.Client) *RedisFlashStore {
	return &RedisFlashStore{client: client}
}

func (s *RedisFlashStore) Push(ctx context.Context, id string, f Flash) error {
	if id == "" {
		return nil
	}
	payload, err := json.Marshal(f)
	if err != nil {
		return err
	}

	key := flashKeyPrefix + id
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, flashTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisFlashStore) Pop(ctx context.Context, id string) ([]Flash, error) {
	if id == "" {
		return nil, nil
	}

	key := flashKeyPrefix + id
	pipe := s.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	var flashes []Flash
	for _, item := range items.Val() {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}
