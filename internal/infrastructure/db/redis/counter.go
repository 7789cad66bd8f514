package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter provides fixed-window request counting backed by Redis,
// shared across replicas. Key format: ratelimit:<scope>
type WindowCounter struct {
	client *redis.Client
}

// NewWindowCounter creates a WindowCounter wrapping the given Redis client.
func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client}
}

// Incr bumps the counter for key and returns the count inside the current
// window. The window starts at the first hit and the key expires with it.
func (w *WindowCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	full := "ratelimit:" + key
	n, err := w.client.Incr(ctx, full).Result()
	if err != nil {
		return 0, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := w.client.Expire(ctx, full, window).Err(); err != nil {
			return n, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n, nil
}
