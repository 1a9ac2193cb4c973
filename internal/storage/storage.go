// Package storage persists session history snapshots.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/pkg/narrative"
)

// SessionStore persists one history snapshot per session. Load returns
// (nil, nil) when no snapshot exists for the id.
type SessionStore interface {
	SaveSnapshot(ctx context.Context, id uuid.UUID, s *narrative.Snapshot) error
	LoadSnapshot(ctx context.Context, id uuid.UUID) (*narrative.Snapshot, error)
	DeleteSnapshot(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
	Close() error
}
