package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// MockCacheRepository implements domain.CacheRepository for testing. The
// default behavior is a working in-memory cache without TTL handling.
type MockCacheRepository struct {
	GetJSONFunc func(ctx context.Context, key string, dest any) (bool, error)
	SetJSONFunc func(ctx context.Context, key string, value any, ttl time.Duration) error
	DelFunc     func(ctx context.Context, keys ...string) error

	store map[string][]byte
}

// NewMockCacheRepository creates a new MockCacheRepository with default behaviors
func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{store: make(map[string][]byte)}
}

func (m *MockCacheRepository) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if m.GetJSONFunc != nil {
		return m.GetJSONFunc(ctx, key, dest)
	}
	data, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *MockCacheRepository) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if m.SetJSONFunc != nil {
		return m.SetJSONFunc(ctx, key, value, ttl)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = data
	return nil
}

func (m *MockCacheRepository) Del(ctx context.Context, keys ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, keys...)
	}
	for _, key := range keys {
		delete(m.store, key)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.CacheRepository = (*MockCacheRepository)(nil)
