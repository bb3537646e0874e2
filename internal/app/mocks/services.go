package mocks

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"sync"
	"sync/atomic"
	"time"
)

var (
	_ contracts.LockerService           = (*MockLockerService)(nil)
	_ contracts.DirectoryEventPublisher = (*MockDirectoryEventPublisher)(nil)
	_ contracts.FilterOptionsMaintainer = (*MockFilterOptionsMaintainer)(nil)
	_ contracts.Storage                 = (*MockStorage)(nil)
)

type MockLockerService struct {
	TryLockFunc func(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	UnlockFunc  func(ctx context.Context, key, lockValue string) error
	RefreshFunc func(ctx context.Context, key, lockValue string, expiration time.Duration) error

	TryLockCallCount int32
	UnlockCallCount  int32
	RefreshCallCount int32
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	atomic.AddInt32(&m.TryLockCallCount, 1)
	if m.TryLockFunc != nil {
		return m.TryLockFunc(ctx, key, expiration)
	}
	return true, "token", nil
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	atomic.AddInt32(&m.UnlockCallCount, 1)
	if m.UnlockFunc != nil {
		return m.UnlockFunc(ctx, key, lockValue)
	}
	return nil
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	atomic.AddInt32(&m.RefreshCallCount, 1)
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, key, lockValue, expiration)
	}
	return nil
}

// MockDirectoryEventPublisher records every published event.
type MockDirectoryEventPublisher struct {
	mu     sync.Mutex
	Events []models.DirectoryEvent

	PublishFunc func(ctx context.Context, event models.DirectoryEvent) error

	PublishCallCount int32
}

func (m *MockDirectoryEventPublisher) Publish(ctx context.Context, event models.DirectoryEvent) error {
	atomic.AddInt32(&m.PublishCallCount, 1)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return nil
}

type MockFilterOptionsMaintainer struct {
	InvalidateFilterOptionsFunc func(ctx context.Context) error
	WarmFilterOptionsFunc       func(ctx context.Context) error

	InvalidateCallCount int32
	WarmCallCount       int32
}

func (m *MockFilterOptionsMaintainer) InvalidateFilterOptions(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	if m.InvalidateFilterOptionsFunc != nil {
		return m.InvalidateFilterOptionsFunc(ctx)
	}
	return nil
}

func (m *MockFilterOptionsMaintainer) WarmFilterOptions(ctx context.Context) error {
	atomic.AddInt32(&m.WarmCallCount, 1)
	if m.WarmFilterOptionsFunc != nil {
		return m.WarmFilterOptionsFunc(ctx)
	}
	return nil
}

// MockStorage serves Objects keyed by "bucket/object".
type MockStorage struct {
	Objects map[string][]byte

	GetObjectFunc func(ctx context.Context, bucketName, objectName string) ([]byte, error)

	GetObjectCallCount int32
}

func (m *MockStorage) GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	atomic.AddInt32(&m.GetObjectCallCount, 1)
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, bucketName, objectName)
	}
	data, ok := m.Objects[bucketName+"/"+objectName]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return data, nil
}
