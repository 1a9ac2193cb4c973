package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveLoad(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()
	id := uuid.New()

	snap := testSnapshot()
	require.NoError(t, store.SaveSnapshot(ctx, id, snap))

	loaded, err := store.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestFileStoreFileNaming(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)
	id := uuid.New()

	require.NoError(t, store.SaveSnapshot(context.Background(), id, testSnapshot()))

	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf("history_%s.json", id)))
	assert.NoError(t, err)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()
	id := uuid.New()

	first := testSnapshot()
	require.NoError(t, store.SaveSnapshot(ctx, id, first))

	second := testSnapshot()
	second.RecentStoryUserInput = append(second.RecentStoryUserInput, "descend")
	second.RecentStoryStory = append(second.RecentStoryStory, "The cellar is cold.")
	require.NoError(t, store.SaveSnapshot(ctx, id, second))

	loaded, err := store.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestFileStoreLoadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	loaded, err := store.LoadSnapshot(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.SaveSnapshot(ctx, id, testSnapshot()))
	require.NoError(t, store.DeleteSnapshot(ctx, id))

	loaded, err := store.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	assert.NoError(t, store.DeleteSnapshot(ctx, uuid.New()))
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))
}
