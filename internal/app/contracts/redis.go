package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	// IncrementWithExpiry increments the counter under key, setting its TTL
	// on first use, and returns the new value.
	IncrementWithExpiry(ctx context.Context, key string, expiry time.Duration) (int64, error)
}
