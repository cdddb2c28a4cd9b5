package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// CacheRepositoryImpl implements domain.CacheRepository using Redis
type CacheRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(client *redis.Client) domain.CacheRepository {
	return &CacheRepositoryImpl{
		client: client,
		prefix: "cache:",
	}
}

// GetJSON implements domain.CacheRepository. The bool reports whether the
// key was present.
func (r *CacheRepositoryImpl) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached value: %w", err)
	}
	return true, nil
}

// SetJSON implements domain.CacheRepository
func (r *CacheRepositoryImpl) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return r.client.Set(ctx, r.prefix+key, data, ttl).Err()
}

// Del implements domain.CacheRepository
func (r *CacheRepositoryImpl) Del(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = r.prefix + key
	}
	return r.client.Del(ctx, prefixed...).Err()
}
