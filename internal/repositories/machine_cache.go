package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/models"
)

const machineSummaryKey = "machines:summaries"

// MachineSummaryCacheRepository caches the machine selection projection in
// Redis. The catalog is read-heavy and changes only on admin writes.
type MachineSummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewMachineSummaryCacheRepository creates a cache repository with the given TTL.
func NewMachineSummaryCacheRepository(client *redis.Client, expiration time.Duration) *MachineSummaryCacheRepository {
	return &MachineSummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached projection, or (nil, nil) on a cache miss.
func (r *MachineSummaryCacheRepository) Get(ctx context.Context) ([]models.MachineSummary, error) {
	val, err := r.client.Get(ctx, machineSummaryKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("machine summary cache read failed", "error", err)
		return nil, err
	}

	var summaries []models.MachineSummary
	if err := json.Unmarshal([]byte(val), &summaries); err != nil {
		logger.Log.Errorw("machine summary cache payload corrupt", "error", err)
		return nil, err
	}
	return summaries, nil
}

// Set stores the projection with the configured TTL.
func (r *MachineSummaryCacheRepository) Set(ctx context.Context, summaries []models.MachineSummary) error {
	data, err := json.Marshal(summaries)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, machineSummaryKey, data, r.exp).Err()
}

// Invalidate drops the cached projection after a catalog write.
func (r *MachineSummaryCacheRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, machineSummaryKey).Err()
}
