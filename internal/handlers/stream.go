package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/internal/engine"
	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/prompts"
)

const defaultChunkRunes = 10

// StreamHandler serves the NDJSON streaming variants of setup and action.
// The full completion is generated and parsed first; streaming is
// output-side pacing of the finished narrative, not token streaming.
type StreamHandler struct {
	games  *GameHandler
	logger *slog.Logger

	// ChunkInterval is the delay between narrative chunks. Tests set it to
	// zero.
	ChunkInterval time.Duration
}

// NewStreamHandler creates a new streaming handler sharing the game
// handler's session plumbing.
func NewStreamHandler(games *GameHandler, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		games:         games,
		logger:        logger,
		ChunkInterval: 100 * time.Millisecond,
	}
}

// ServeHTTP dispatches streaming requests by path
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(w, h.logger, http.StatusMethodNotAllowed, game.TurnResponse{
			Message: "Method not allowed. Only POST is supported.",
		})
		return
	}

	switch r.URL.Path {
	case "/v1/games/setup/stream":
		h.handleSetupStream(w, r)
	case "/v1/games/action/stream":
		h.handleActionStream(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *StreamHandler) handleSetupStream(w http.ResponseWriter, r *http.Request) {
	var req game.SetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Validate() != nil {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(w, h.logger, http.StatusBadRequest, game.TurnResponse{
			Message: "Invalid request body.",
		})
		return
	}

	s, stream, ok := h.begin(w, req.SessionID)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	msgs := prompts.MessagesFor(s.Engine.Language())
	stream.send(game.StreamEvent{Type: game.StreamProgress, Message: msgs.GeneratingWorld})

	result, err := s.Engine.SetupNewGame(r.Context(), req.StoryFramework, req.CharacterSeed)
	h.finish(stream, req.SessionID, result, err)
}

func (h *StreamHandler) handleActionStream(w http.ResponseWriter, r *http.Request) {
	var req game.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Validate() != nil {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(w, h.logger, http.StatusBadRequest, game.TurnResponse{
			Message: "Invalid request body.",
		})
		return
	}

	s, stream, ok := h.begin(w, req.SessionID)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	msgs := prompts.MessagesFor(s.Engine.Language())
	if !s.Engine.Initialized() {
		stream.send(game.StreamEvent{Type: game.StreamComplete, Response: &game.TurnResponse{
			SessionID:   req.SessionID,
			Narrative:   msgs.NotInitialized,
			NextPrompts: msgs.NotInitializedPrompts,
			Success:     false,
			Message:     "session is not initialized",
		}})
		return
	}

	stream.send(game.StreamEvent{Type: game.StreamProgress, Message: msgs.ContinuingAdventure})

	result, err := s.Engine.TakeAction(r.Context(), req.UserInput)
	h.finish(stream, req.SessionID, result, err)
}

// begin resolves the session and opens the NDJSON stream with its start
// event.
func (h *StreamHandler) begin(w http.ResponseWriter, id uuid.UUID) (*session.Session, *ndjsonStream, bool) {
	s, ok := h.games.lookup(w, id)
	if !ok {
		return nil, nil, false
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")

	stream := &ndjsonStream{w: w, logger: h.logger}
	stream.send(game.StreamEvent{Type: game.StreamStart})
	return s, stream, true
}

// finish paces the narrative out in chunks and terminates the stream with
// exactly one complete or error event.
func (h *StreamHandler) finish(stream *ndjsonStream, id uuid.UUID, result *engine.TurnResult, err error) {
	if err != nil && result == nil {
		h.logger.Error("Streaming turn failed", "session_id", id.String(), "error", err)
		stream.send(game.StreamEvent{Type: game.StreamError, Message: "Failed to process the turn. Please try again."})
		return
	}
	if err != nil {
		// persist failure after a completed turn: deliver the narrative
		h.logger.Error("Turn completed but persistence failed", "session_id", id.String(), "error", err)
	}

	for _, chunk := range chunkRunes(result.Narrative, defaultChunkRunes) {
		stream.send(game.StreamEvent{Type: game.StreamChunk, Content: chunk})
		if h.ChunkInterval > 0 {
			time.Sleep(h.ChunkInterval)
		}
	}

	stream.send(game.StreamEvent{Type: game.StreamComplete, Response: &game.TurnResponse{
		SessionID:   id,
		Narrative:   result.Narrative,
		NextPrompts: result.NextPrompts,
		Success:     true,
	}})
}

// chunkRunes splits s into chunks of n runes. Splitting on runes keeps
// multi-byte narrative text intact.
func chunkRunes(s string, n int) []string {
	runes := []rune(s)
	var chunks []string
	for start := 0; start < len(runes); start += n {
		end := start + n
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// ndjsonStream writes one JSON event per line, flushing after each.
type ndjsonStream struct {
	w      http.ResponseWriter
	logger *slog.Logger
}

func (s *ndjsonStream) send(ev game.StreamEvent) {
	if err := json.NewEncoder(s.w).Encode(ev); err != nil {
		s.logger.Error("Error encoding stream event", "error", err)
		return
	}
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
}
