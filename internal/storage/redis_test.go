package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/narrative"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testSnapshot() *narrative.Snapshot {
	return &narrative.Snapshot{
		StoryFramework:        "a haunted lighthouse on the northern coast",
		RecentStoryUserInput:  []string{"", "climb the stairs"},
		RecentStoryStory:      []string{"The keeper's journal lies open.", "The stairs groan underfoot."},
		HistoryStoryUserInput: []string{"enter"},
		HistoryStoryStory:     []string{"arrived at lighthouse --> found journal"},
	}
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStore(mr.Addr(), time.Hour, testLogger())
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStoreSaveLoad(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	id := uuid.New()

	snap := testSnapshot()
	require.NoError(t, store.SaveSnapshot(ctx, id, snap))

	loaded, err := store.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap, loaded)
}

func TestRedisStoreLoadMissing(t *testing.T) {
	store, _ := newTestRedisStore(t)

	loaded, err := store.LoadSnapshot(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStoreWireFormat(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.SaveSnapshot(ctx, id, testSnapshot()))

	raw, err := mr.Get("session:" + id.String())
	require.NoError(t, err)

	var record map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	for _, key := range []string{
		"story_framework",
		"recent_story_user_input",
		"recent_story_story",
		"history_story_user_input",
		"history_story_story",
	} {
		assert.Contains(t, record, key)
	}
}

func TestRedisStoreTTL(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.SaveSnapshot(ctx, id, testSnapshot()))
	assert.Greater(t, mr.TTL("session:"+id.String()), time.Duration(0))

	mr.FastForward(2 * time.Hour)
	loaded, err := store.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.SaveSnapshot(ctx, id, testSnapshot()))
	require.NoError(t, store.DeleteSnapshot(ctx, id))

	loaded, err := store.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// deleting a missing snapshot is not an error
	assert.NoError(t, store.DeleteSnapshot(ctx, uuid.New()))
}

func TestRedisStorePing(t *testing.T) {
	store, mr := newTestRedisStore(t)
	assert.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
