package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Provider estimates for a given factor id and amount are stable over
// hours, so cached results are kept for a day.
const estimateTTL = 24 * time.Hour

// RedisClient caches provider estimates. It implements
// emissions.EstimateCache.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(redisURL string) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func estimateKey(factorID string, amount float64) string {
	return fmt.Sprintf("estimate:%s:%g", factorID, amount)
}

// GetEstimate returns a cached provider result. The second return is
// false on a miss.
func (r *RedisClient) GetEstimate(ctx context.Context, factorID string, amount float64) (float64, bool, error) {
	co2e, err := r.client.Get(ctx, estimateKey(factorID, amount)).Float64()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get estimate from Redis: %w", err)
	}
	return co2e, true, nil
}

// StoreEstimate caches a provider result with expiration.
func (r *RedisClient) StoreEstimate(ctx context.Context, factorID string, amount, co2e float64) error {
	if err := r.client.Set(ctx, estimateKey(factorID, amount), co2e, estimateTTL).Err(); err != nil {
		return fmt.Errorf("failed to store estimate in Redis: %w", err)
	}
	return nil
}
