// Package session tracks live game sessions and serializes turns per
// session.
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/internal/engine"
)

// ErrNotFound is returned when a session id is unknown or has been evicted.
var ErrNotFound = errors.New("session not found")

// Session is one live game session. Callers must hold the lock for the
// duration of a turn so appends to the history never interleave.
type Session struct {
	ID     uuid.UUID
	Engine *engine.Engine

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

type entry struct {
	session  *Session
	lastUsed time.Time
}

// Registry holds live sessions keyed by id with sliding-TTL eviction.
// The persisted snapshot in storage outlives eviction; an evicted session
// can be reconstructed from it.
type Registry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	ttl     time.Duration
	logger  *slog.Logger
	done    chan struct{}
	once    sync.Once
}

// NewRegistry creates a registry and starts its eviction janitor.
func NewRegistry(ttl time.Duration, logger *slog.Logger) *Registry {
	r := &Registry{
		entries: make(map[uuid.UUID]*entry),
		ttl:     ttl,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go r.janitor()
	return r
}

// Add registers an engine under its session id.
func (r *Registry) Add(e *engine.Engine) *Session {
	s := &Session{ID: e.ID(), Engine: e}
	r.mu.Lock()
	r.entries[s.ID] = &entry{session: s, lastUsed: time.Now()}
	r.mu.Unlock()
	return s
}

// Get looks up a session and refreshes its TTL.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ent, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	ent.lastUsed = time.Now()
	return ent.session, nil
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close stops the janitor. Sessions are left to the garbage collector.
func (r *Registry) Close() {
	r.once.Do(func() { close(r.done) })
}

func (r *Registry) janitor() {
	interval := r.ttl / 10
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.evictExpired(time.Now())
		}
	}
}

func (r *Registry) evictExpired(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ent := range r.entries {
		if now.Sub(ent.lastUsed) > r.ttl {
			delete(r.entries, id)
			r.logger.Info("Evicted idle session", "session_id", id.String())
		}
	}
}
