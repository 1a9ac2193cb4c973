package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/pkg/narrative"
)

// FileStore implements SessionStore on the local filesystem, one JSON file
// per session. Suited to single-instance and development deployments.
type FileStore struct {
	dataDir string
	logger  *slog.Logger
}

var _ SessionStore = (*FileStore)(nil)

// NewFileStore creates a new filesystem session store rooted at dataDir
func NewFileStore(dataDir string, logger *slog.Logger) (*FileStore, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dataDir: dataDir, logger: logger}, nil
}

func (f *FileStore) path(id uuid.UUID) string {
	return filepath.Join(f.dataDir, fmt.Sprintf("history_%s.json", id))
}

// SaveSnapshot overwrites the session file unconditionally
func (f *FileStore) SaveSnapshot(ctx context.Context, id uuid.UUID, s *narrative.Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(f.path(id), data, 0o644); err != nil {
		f.logger.Error("Failed to write session file", "session_id", id, "error", err)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (f *FileStore) LoadSnapshot(ctx context.Context, id uuid.UUID) (*narrative.Snapshot, error) {
	data, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s narrative.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &s, nil
}

func (f *FileStore) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	if err := os.Remove(f.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

func (f *FileStore) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dataDir)
	if err != nil {
		return fmt.Errorf("data dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", f.dataDir)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}
