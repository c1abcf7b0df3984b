package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the slice of the redis client the services rely on.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

var _ Cache = (*redis.Client)(nil)
