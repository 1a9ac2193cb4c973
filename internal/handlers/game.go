package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/jwebster45206/adventure-engine/internal/engine"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/prompts"
)

// GameHandler handles the non-streaming game endpoints: initialize, setup,
// action and world generation.
type GameHandler struct {
	registry *session.Registry
	llm      services.LLMService
	store    storage.SessionStore
	logger   *slog.Logger

	// LLMFor, when set, builds a backend for per-session model or
	// backend_type overrides. Empty overrides use the shared service.
	LLMFor func(model, backendType string) (services.LLMService, error)
}

// NewGameHandler creates a new game handler
func NewGameHandler(registry *session.Registry, llm services.LLMService, store storage.SessionStore, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		registry: registry,
		llm:      llm,
		store:    store,
		logger:   logger,
	}
}

// ServeHTTP dispatches game requests by path
func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for game endpoint",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)
		writeJSON(w, h.logger, http.StatusMethodNotAllowed, game.TurnResponse{
			Message: "Method not allowed. Only POST is supported.",
		})
		return
	}

	switch r.URL.Path {
	case "/v1/games":
		h.handleInitialize(w, r)
	case "/v1/games/setup":
		h.handleSetup(w, r)
	case "/v1/games/action":
		h.handleAction(w, r)
	case "/v1/games/world":
		h.handleWorld(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *GameHandler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	var req game.InitializeRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Warn("Invalid initialize request body", "error", err)
			writeJSON(w, h.logger, http.StatusBadRequest, game.InitializeResponse{
				Message: "Invalid request body.",
			})
			return
		}
	}

	lang := prompts.Match(req.Language)

	llm := h.llm
	if h.LLMFor != nil && (req.Model != "" || req.BackendType != "") {
		override, err := h.LLMFor(req.Model, req.BackendType)
		if err != nil {
			h.logger.Error("Failed to build LLM backend override",
				"model", req.Model,
				"backend_type", req.BackendType,
				"error", err)
			writeJSON(w, h.logger, http.StatusBadGateway, game.InitializeResponse{
				Message: "Requested backend is unavailable.",
			})
			return
		}
		llm = override
	}

	eng := engine.New(uuid.New(), lang, llm, h.store, h.logger)
	s := h.registry.Add(eng)

	logger.WithSession(h.logger, s.ID.String()).Info("Session initialized",
		"language", lang.String())

	msgs := prompts.MessagesFor(lang)
	writeJSON(w, h.logger, http.StatusOK, game.InitializeResponse{
		SessionID:    s.ID,
		ReadyPrompts: []string{msgs.SettingPrompt, msgs.CharacterPrompt},
		Success:      true,
	})
}

func (h *GameHandler) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req game.SetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid setup request body", "error", err)
		writeJSON(w, h.logger, http.StatusBadRequest, game.TurnResponse{
			Message: "Invalid request body.",
		})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, game.TurnResponse{
			SessionID: req.SessionID,
			Message:   err.Error(),
		})
		return
	}

	s, ok := h.lookup(w, req.SessionID)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	result, err := s.Engine.SetupNewGame(r.Context(), req.StoryFramework, req.CharacterSeed)
	h.writeTurn(w, req.SessionID, s.Engine.Language(), engine.StageSetup, result, err)
}

func (h *GameHandler) handleAction(w http.ResponseWriter, r *http.Request) {
	var req game.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid action request body", "error", err)
		writeJSON(w, h.logger, http.StatusBadRequest, game.TurnResponse{
			Message: "Invalid request body.",
		})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, game.TurnResponse{
			SessionID: req.SessionID,
			Message:   err.Error(),
		})
		return
	}

	s, ok := h.lookup(w, req.SessionID)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	if !s.Engine.Initialized() {
		// turn-level failure, not a transport error: the body carries it
		msgs := prompts.MessagesFor(s.Engine.Language())
		writeJSON(w, h.logger, http.StatusOK, game.TurnResponse{
			SessionID:   req.SessionID,
			Narrative:   msgs.NotInitialized,
			NextPrompts: msgs.NotInitializedPrompts,
			Success:     false,
			Message:     "session is not initialized",
		})
		return
	}

	result, err := s.Engine.TakeAction(r.Context(), req.UserInput)
	h.writeTurn(w, req.SessionID, s.Engine.Language(), engine.StageAction, result, err)
}

func (h *GameHandler) handleWorld(w http.ResponseWriter, r *http.Request) {
	var req game.WorldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid world request body", "error", err)
		writeJSON(w, h.logger, http.StatusBadRequest, game.WorldResponse{
			Message: "Invalid request body.",
		})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, game.WorldResponse{
			SessionID: req.SessionID,
			Message:   err.Error(),
		})
		return
	}

	s, ok := h.lookup(w, req.SessionID)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	world, err := s.Engine.GenerateWorld(r.Context())
	if err != nil {
		h.logger.Error("World generation failed", "session_id", req.SessionID.String(), "error", err)
		writeJSON(w, h.logger, http.StatusOK, game.WorldResponse{
			SessionID: req.SessionID,
			Success:   false,
			Message:   "Failed to generate world framework.",
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, game.WorldResponse{
		SessionID:         req.SessionID,
		WorldStructure:    world.WorldStructure,
		ImportantNPC:      world.ImportantNPC,
		History:           world.History,
		WorldArchitecture: world.WorldArchitecture,
		Success:           true,
	})
}

// lookup resolves a session, reviving it from the persisted snapshot when it
// has been evicted from the registry. A session unknown to both the registry
// and storage is a 404.
func (h *GameHandler) lookup(w http.ResponseWriter, id uuid.UUID) (*session.Session, bool) {
	s, err := h.registry.Get(id)
	if err == nil {
		return s, true
	}

	eng := engine.New(id, language.English, h.llm, h.store, h.logger)
	eng.LoadState(context.Background())
	if !eng.Initialized() {
		writeJSON(w, h.logger, http.StatusNotFound, game.TurnResponse{
			SessionID: id,
			Message:   "Session not found.",
		})
		return nil, false
	}

	logger.WithSession(h.logger, id.String()).Info("Revived session from storage",
		"language", eng.Language().String())
	return h.registry.Add(eng), true
}

// writeTurn encodes the outcome of a setup or action turn. A persist failure
// after a successful completion still delivers the narrative. A failed turn
// carries the localized failure narrative with generic suggested actions.
func (h *GameHandler) writeTurn(w http.ResponseWriter, id uuid.UUID, lang language.Tag, stage string, result *engine.TurnResult, err error) {
	log := logger.WithSession(h.logger, id.String())
	if err != nil {
		if result != nil {
			logger.WithError(log, err).Error("Turn completed but persistence failed")
			writeJSON(w, h.logger, http.StatusOK, game.TurnResponse{
				SessionID:   id,
				Narrative:   result.Narrative,
				NextPrompts: result.NextPrompts,
				Success:     true,
			})
			return
		}

		msgs := prompts.MessagesFor(lang)
		narrative := msgs.ActionFailed
		suggestions := msgs.ActionFailedPrompts
		if stage == engine.StageSetup {
			narrative = msgs.SetupFailed
			suggestions = msgs.SetupFailedPrompts
		}
		logger.WithError(log, err).Error("Turn failed", "stage", stage)
		writeJSON(w, h.logger, http.StatusOK, game.TurnResponse{
			SessionID:   id,
			Narrative:   narrative,
			NextPrompts: suggestions,
			Success:     false,
			Message:     "Failed to process the turn. Please try again.",
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, game.TurnResponse{
		SessionID:   id,
		Narrative:   result.Narrative,
		NextPrompts: result.NextPrompts,
		Success:     true,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", "error", err)
	}
}
