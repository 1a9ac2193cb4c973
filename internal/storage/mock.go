package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/pkg/narrative"
)

// MockStore is an in-memory SessionStore for testing
type MockStore struct {
	SaveFunc   func(ctx context.Context, id uuid.UUID, s *narrative.Snapshot) error
	LoadFunc   func(ctx context.Context, id uuid.UUID) (*narrative.Snapshot, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	PingFunc   func(ctx context.Context) error

	mu        sync.Mutex
	snapshots map[uuid.UUID]*narrative.Snapshot
}

var _ SessionStore = (*MockStore)(nil)

// NewMockStore creates a new in-memory session store
func NewMockStore() *MockStore {
	return &MockStore{
		snapshots: make(map[uuid.UUID]*narrative.Snapshot),
	}
}

func (m *MockStore) SaveSnapshot(ctx context.Context, id uuid.UUID, s *narrative.Snapshot) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, id, s)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[id] = s
	return nil
}

func (m *MockStore) LoadSnapshot(ctx context.Context, id uuid.UUID) (*narrative.Snapshot, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshots[id], nil
}

func (m *MockStore) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, id)
	return nil
}

func (m *MockStore) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
func (m *MockStore) Close() error                   { return nil }
