package redis

import (
	"annuaire-service/internal/app/contracts"
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *goredis.Client
}

func NewRedisRepository(client *goredis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) IncrementWithExpiry(ctx context.Context, key string, expiry time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, expiry)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
