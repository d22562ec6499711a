package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config holds the Redis connection settings for the view-count store.
type Config struct {
	Addr     string
	Password string
	DB       int
	// PoolSize bounds concurrent connections. Zero keeps the client default
	// (10 per CPU), which is plenty for counter traffic.
	PoolSize int
}

// Connect builds a Redis client from cfg and verifies the server is reachable
// before handing it out. View counting is best-effort at request time, so a
// dead Redis should fail startup rather than silently zero every count.
func (c Config) Connect(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", c.Addr, err)
	}
	return client, nil
}
