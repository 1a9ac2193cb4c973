package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/pkg/game"
)

func newStreamEnv(t *testing.T) (*testEnv, *StreamHandler) {
	t.Helper()
	env := newTestEnv(t)
	sh := NewStreamHandler(env.handler, testLogger())
	sh.ChunkInterval = 0
	return env, sh
}

func postStream(t *testing.T, sh *StreamHandler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	sh.ServeHTTP(w, req)
	return w
}

func decodeEvents(t *testing.T, body string) []game.StreamEvent {
	t.Helper()
	var events []game.StreamEvent
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		var ev game.StreamEvent
		require.NoError(t, json.Unmarshal([]byte(line), &ev), "line: %s", line)
		events = append(events, ev)
	}
	return events
}

func TestSetupStream(t *testing.T) {
	env, sh := newStreamEnv(t)
	id := env.initialize(t, "en")

	w := postStream(t, sh, "/v1/games/setup/stream", game.SetupRequest{
		SessionID:      id,
		StoryFramework: "A lighthouse on a storm-wracked coast.",
		CharacterSeed:  "Mira, a young keeper",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))

	events := decodeEvents(t, w.Body.String())
	require.GreaterOrEqual(t, len(events), 4)

	assert.Equal(t, game.StreamStart, events[0].Type)
	assert.Equal(t, game.StreamProgress, events[1].Type)
	assert.NotEmpty(t, events[1].Message)

	last := events[len(events)-1]
	require.Equal(t, game.StreamComplete, last.Type)
	require.NotNil(t, last.Response)
	assert.True(t, last.Response.Success)
	assert.Equal(t, "The storm batters the lighthouse.", last.Response.Narrative)

	// the chunk events reassemble into the full narrative
	var rebuilt strings.Builder
	for _, ev := range events {
		if ev.Type == game.StreamChunk {
			rebuilt.WriteString(ev.Content)
		}
	}
	assert.Equal(t, last.Response.Narrative, rebuilt.String())
}

func TestActionStream(t *testing.T) {
	env, sh := newStreamEnv(t)
	id := env.initialize(t, "en")
	env.setup(t, id)

	w := postStream(t, sh, "/v1/games/action/stream", game.ActionRequest{
		SessionID: id,
		UserInput: "light the lamp",
	})
	require.Equal(t, http.StatusOK, w.Code)

	events := decodeEvents(t, w.Body.String())
	last := events[len(events)-1]
	require.Equal(t, game.StreamComplete, last.Type)
	assert.Equal(t, "The lamp flares to life.", last.Response.Narrative)
	assert.Equal(t, []string{"signal the ship"}, last.Response.NextPrompts)

	// exactly one terminal event
	terminal := 0
	for _, ev := range events {
		if ev.Type == game.StreamComplete || ev.Type == game.StreamError {
			terminal++
		}
	}
	assert.Equal(t, 1, terminal)
}

func TestActionStreamBeforeSetup(t *testing.T) {
	env, sh := newStreamEnv(t)
	id := env.initialize(t, "en")

	w := postStream(t, sh, "/v1/games/action/stream", game.ActionRequest{
		SessionID: id,
		UserInput: "look around",
	})
	require.Equal(t, http.StatusOK, w.Code)

	events := decodeEvents(t, w.Body.String())
	last := events[len(events)-1]
	require.Equal(t, game.StreamComplete, last.Type)
	assert.False(t, last.Response.Success)
	assert.Contains(t, last.Response.Narrative, "not properly initialized")
	assert.Equal(t, []string{"Setup a new game"}, last.Response.NextPrompts)
}

func TestActionStreamCompletionFailure(t *testing.T) {
	env, sh := newStreamEnv(t)
	id := env.initialize(t, "en")
	env.setup(t, id)

	env.llm.CompleteFunc = func(ctx context.Context, req services.CompletionRequest) (string, error) {
		return "", errors.New("backend unavailable")
	}

	w := postStream(t, sh, "/v1/games/action/stream", game.ActionRequest{
		SessionID: id,
		UserInput: "light the lamp",
	})
	require.Equal(t, http.StatusOK, w.Code)

	events := decodeEvents(t, w.Body.String())
	last := events[len(events)-1]
	assert.Equal(t, game.StreamError, last.Type)
	assert.NotEmpty(t, last.Message)

	// no chunk precedes an error event
	for _, ev := range events {
		assert.NotEqual(t, game.StreamChunk, ev.Type)
	}
}

func TestStreamUnknownSession(t *testing.T) {
	_, sh := newStreamEnv(t)

	w := postStream(t, sh, "/v1/games/action/stream", game.ActionRequest{
		SessionID: uuid.New(),
		UserInput: "look around",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamChunkingUnicode(t *testing.T) {
	chunks := chunkRunes("四处看看，灯塔在风暴中摇晃。一二三", 10)
	require.Len(t, chunks, 2)
	assert.Equal(t, "四处看看，灯塔在风暴", chunks[0])
	assert.Equal(t, "中摇晃。一二三", chunks[1])
	assert.Equal(t, "四处看看，灯塔在风暴中摇晃。一二三", strings.Join(chunks, ""))
}

func TestStreamMethodNotAllowed(t *testing.T) {
	_, sh := newStreamEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/games/action/stream", nil)
	w := httptest.NewRecorder()
	sh.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
