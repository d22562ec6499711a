package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViewCounter tracks per-paper view counts in Redis.
// Key format: paper:views:<paper_id>
type ViewCounter struct {
	client *redis.Client
}

// NewViewCounter creates a ViewCounter wrapping the given Redis client.
func NewViewCounter(client *redis.Client) *ViewCounter {
	return &ViewCounter{client: client}
}

// Increment bumps the paper's view count and returns the new value.
func (v *ViewCounter) Increment(ctx context.Context, paperID string) (int64, error) {
	n, err := v.client.Incr(ctx, v.key(paperID)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return n, nil
}

// Get returns the paper's view count; a paper never viewed counts zero.
func (v *ViewCounter) Get(ctx context.Context, paperID string) (int64, error) {
	n, err := v.client.Get(ctx, v.key(paperID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get views: %w", err)
	}
	return n, nil
}

func (v *ViewCounter) key(paperID string) string {
	return "paper:views:" + paperID
}
