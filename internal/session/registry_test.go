package session

import (
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jwebster45206/adventure-engine/internal/engine"
	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestEngine() *engine.Engine {
	return engine.New(uuid.New(), language.English, services.NewMockLLMService(), storage.NewMockStore(), testLogger())
}

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry(time.Hour, testLogger())
	defer r.Close()

	s := r.Add(newTestEngine())
	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry(time.Hour, testLogger())
	defer r.Close()

	_, err := r.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(time.Hour, testLogger())
	defer r.Close()

	s := r.Add(newTestEngine())
	r.Remove(s.ID)

	_, err := r.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryEvictsIdleSessions(t *testing.T) {
	r := NewRegistry(time.Hour, testLogger())
	defer r.Close()

	idle := r.Add(newTestEngine())
	active := r.Add(newTestEngine())

	// simulate the active session being touched an hour later
	later := time.Now().Add(61 * time.Minute)
	_, err := r.Get(active.ID)
	require.NoError(t, err)
	r.mu.Lock()
	r.entries[active.ID].lastUsed = later
	r.mu.Unlock()

	r.evictExpired(later)

	_, err = r.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Get(active.ID)
	assert.NoError(t, err)
}

func TestRegistryGetRefreshesTTL(t *testing.T) {
	r := NewRegistry(time.Hour, testLogger())
	defer r.Close()

	s := r.Add(newTestEngine())
	_, err := r.Get(s.ID)
	require.NoError(t, err)

	// a sweep right at the old deadline must not evict a just-touched session
	r.evictExpired(time.Now().Add(59 * time.Minute))
	_, err = r.Get(s.ID)
	assert.NoError(t, err)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry(time.Hour, testLogger())
	defer r.Close()

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, 50)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := r.Add(newTestEngine())
			ids[i] = s.ID
			_, _ = r.Get(s.ID)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
	for _, id := range ids {
		_, err := r.Get(id)
		assert.NoError(t, err)
	}
}

func TestRegistryCloseIdempotent(t *testing.T) {
	r := NewRegistry(time.Hour, testLogger())
	r.Close()
	r.Close()
}

func TestSessionLockSerializesTurns(t *testing.T) {
	r := NewRegistry(time.Hour, testLogger())
	defer r.Close()
	s := r.Add(newTestEngine())

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Lock()
			counter++
			s.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, counter)
}
