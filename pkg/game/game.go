// Package game defines the request and response types exchanged between the
// adventure-engine API and its clients.
package game

import (
	"fmt"

	"github.com/google/uuid"
)

// InitializeRequest starts a new game session. Model and BackendType are
// optional overrides for the server defaults.
type InitializeRequest struct {
	Language    string `json:"language,omitempty"`     // "en" or "zh", default "en"
	Model       string `json:"model,omitempty"`        // override the configured model
	BackendType string `json:"backend_type,omitempty"` // override the configured provider
}

// InitializeResponse returns the id of the newly created session along with
// the localized onboarding prompts the client should show the player.
type InitializeResponse struct {
	SessionID    uuid.UUID `json:"session_id"`
	ReadyPrompts []string  `json:"ready_prompts"`
	Success      bool      `json:"success"`
	Message      string    `json:"message,omitempty"`
}

// SetupRequest seeds a session with a story framework and a character seed,
// then generates the opening scene.
type SetupRequest struct {
	SessionID      uuid.UUID `json:"session_id"`
	StoryFramework string    `json:"story_framework"`
	CharacterSeed  string    `json:"character_seed"`
}

func (r *SetupRequest) Validate() error {
	if r.SessionID == uuid.Nil {
		return fmt.Errorf("session_id is required")
	}
	if r.StoryFramework == "" {
		return fmt.Errorf("story_framework cannot be empty")
	}
	if r.CharacterSeed == "" {
		return fmt.Errorf("character_seed cannot be empty")
	}
	return nil
}

// ActionRequest advances a session by one player turn.
type ActionRequest struct {
	SessionID uuid.UUID `json:"session_id"`
	UserInput string    `json:"user_input"`
}

func (r *ActionRequest) Validate() error {
	if r.SessionID == uuid.Nil {
		return fmt.Errorf("session_id is required")
	}
	if r.UserInput == "" {
		return fmt.Errorf("user_input cannot be empty")
	}
	return nil
}

// TurnResponse is returned by both setup and action. Narrative carries the
// story text; NextPrompts carries suggested follow-up actions. Success is
// false when the turn could not be completed, with Message explaining why.
type TurnResponse struct {
	SessionID   uuid.UUID `json:"session_id"`
	Narrative   string    `json:"narrative"`
	NextPrompts []string  `json:"next_prompts,omitempty"`
	Success     bool      `json:"success"`
	Message     string    `json:"message,omitempty"`
}

// WorldRequest generates a structured world framework for a session.
type WorldRequest struct {
	SessionID uuid.UUID `json:"session_id"`
}

func (r *WorldRequest) Validate() error {
	if r.SessionID == uuid.Nil {
		return fmt.Errorf("session_id is required")
	}
	return nil
}

// WorldResponse carries the generated world framework sections.
type WorldResponse struct {
	SessionID         uuid.UUID `json:"session_id"`
	WorldStructure    string    `json:"world_structure"`
	ImportantNPC      string    `json:"important_npc"`
	History           string    `json:"history"`
	WorldArchitecture string    `json:"world_architecture"`
	Success           bool      `json:"success"`
	Message           string    `json:"message,omitempty"`
}

// Stream event types emitted on the NDJSON streaming endpoints.
const (
	StreamStart    = "start"
	StreamProgress = "progress"
	StreamChunk    = "chunk"
	StreamComplete = "complete"
	StreamError    = "error"
)

// StreamEvent is one line of an NDJSON stream. Exactly one of the payload
// fields is set depending on Type: Message for progress and error events,
// Content for chunk events, and Response for the final complete event.
type StreamEvent struct {
	Type     string        `json:"type"`
	Message  string        `json:"message,omitempty"`
	Content  string        `json:"content,omitempty"`
	Response *TurnResponse `json:"response,omitempty"`
}
