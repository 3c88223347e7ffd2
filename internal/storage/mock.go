package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/studyaid/studyaid-api/internal/utils"
)

// mockStorage keeps uploads in memory and returns stable fake URLs. Used in
// development when no object store is configured, and by tests.
type mockStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMockStorage() Storage {
	return &mockStorage{objects: make(map[string][]byte)}
}

func (m *mockStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[key] = buf
	return fmt.Sprintf("https://mock-storage.local/%s", key), nil
}

func (m *mockStorage) Download(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, utils.NewNotFoundError("Object not found")
	}
	return data, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}
