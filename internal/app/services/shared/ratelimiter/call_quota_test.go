package ratelimiter

import (
	"annuaire-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	count int64
	err   error
}

func (f *fakeRedisRepository) IncrementWithExpiry(context.Context, string, time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.count++
	return f.count, nil
}

func TestCallQuota(t *testing.T) {
	t.Run("allows calls under the ceiling", func(t *testing.T) {
		quota := NewCallQuota(&fakeRedisRepository{}, zap.NewNop(), 60, 3)

		for i := 0; i < 3; i++ {
			assert.NoError(t, quota.Allow(context.Background()))
		}
	})

	t.Run("rejects calls over the ceiling", func(t *testing.T) {
		quota := NewCallQuota(&fakeRedisRepository{count: 3}, zap.NewNop(), 60, 3)

		err := quota.Allow(context.Background())
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 429, customErr.StatusCode)
	})

	t.Run("a backend outage does not block the call", func(t *testing.T) {
		quota := NewCallQuota(&fakeRedisRepository{err: errors.New("connection refused")}, zap.NewNop(), 60, 3)
		assert.NoError(t, quota.Allow(context.Background()))
	})

	t.Run("disabled when the ceiling is zero", func(t *testing.T) {
		quota := NewCallQuota(&fakeRedisRepository{count: 100}, zap.NewNop(), 60, 0)
		assert.NoError(t, quota.Allow(context.Background()))
	})
}
