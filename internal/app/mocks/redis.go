package mocks

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
)

var _ contracts.RedisRepository = (*MockRedisRepository)(nil)

// MockRedisRepository is an in-memory stand-in for the Redis repository. Values
// are JSON encoded like the real one. Set a Func field to inject a failure.
type MockRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
	sets   map[string]map[string]struct{}
	ttls   map[string]time.Duration

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value interface{}, exp time.Duration) error
	DeleteFunc func(ctx context.Context, keys ...string) error
	ExpireFunc func(ctx context.Context, key string, exp time.Duration) error

	GetCallCount    int32
	SetCallCount    int32
	DeleteCallCount int32
}

func NewMockRedisRepository() *MockRedisRepository {
	return &MockRedisRepository{
		values: make(map[string]string),
		sets:   make(map[string]map[string]struct{}),
		ttls:   make(map[string]time.Duration),
	}
}

func (m *MockRedisRepository) Delete(ctx context.Context, keys ...string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, keys...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
		delete(m.sets, key)
		delete(m.ttls, key)
	}
	return nil
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, exp)
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = string(encoded)
	m.ttls[key] = exp
	return nil
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MockRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.sets[key]
	if !ok {
		set = make(map[string]struct{})
		m.sets[key] = set
	}
	for _, value := range values {
		if member, ok := value.(string); ok {
			set[member] = struct{}{}
		}
	}
	return nil
}

func (m *MockRedisRepository) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	members := make([]string, 0, len(m.sets[key]))
	for member := range m.sets[key] {
		members = append(members, member)
	}
	return members, nil
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.values[key]; exists {
		return false, nil
	}
	m.values[key] = string(encoded)
	m.ttls[key] = exp
	return true, nil
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	if m.ExpireFunc != nil {
		return m.ExpireFunc(ctx, key, exp)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.values[key]; exists {
		m.ttls[key] = exp
	}
	return nil
}

// Keys reports every plain key currently stored.
func (m *MockRedisRepository) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	return keys
}

func (m *MockRedisRepository) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttls[key]
}
