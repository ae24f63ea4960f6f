package ratelimiter

import (
	"annuaire-service/internal/app/contracts"
	"annuaire-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CallQuota enforces a fixed-window ceiling on outbound registry calls.
// Algorithm: fixed window counter stored in Redis with TTL equal to the
// window duration, shared across replicas.
type CallQuota struct {
	redis     contracts.RedisRepository
	log       *zap.Logger
	windowSec int
	maxCalls  int
}

func NewCallQuota(redis contracts.RedisRepository, log *zap.Logger, windowSec, maxCalls int) *CallQuota {
	if windowSec <= 0 {
		windowSec = 60
	}
	return &CallQuota{
		redis:     redis,
		log:       log,
		windowSec: windowSec,
		maxCalls:  maxCalls,
	}
}

func (q *CallQuota) Allow(ctx context.Context) error {
	if q.maxCalls <= 0 || q.redis == nil {
		return nil
	}

	window := time.Duration(q.windowSec) * time.Second
	key := fmt.Sprintf("annuaire:quota:%d", time.Now().UTC().Unix()/int64(q.windowSec))

	count, err := q.redis.IncrementWithExpiry(ctx, key, window)
	if err != nil {
		// A quota backend outage must not take the search path down.
		q.log.Warn("call quota check skipped",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil
	}

	if count > int64(q.maxCalls) {
		return exceptions.ErrRegistryQuotaExceeded(nil)
	}
	return nil
}
