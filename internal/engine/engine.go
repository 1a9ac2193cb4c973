// Package engine drives the turn protocol of one game session: prompt
// assembly, completion calls, response parsing, history mutation and
// persistence.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/narrative"
	"github.com/jwebster45206/adventure-engine/pkg/parser"
	"github.com/jwebster45206/adventure-engine/pkg/prompts"
)

// TurnResult is the outcome of one completed turn.
type TurnResult struct {
	Narrative   string
	NextPrompts []string
}

// RetryPolicy bounds completion retries within one logical turn. Confirm,
// when set, is asked before each retry; returning false aborts. The zero
// policy never retries.
type RetryPolicy struct {
	MaxRetries int
	Confirm    func(stage string) bool
}

// Retry stages passed to RetryPolicy.Confirm.
const (
	StageSetup  = "setup"
	StageAction = "action"
)

// Engine owns the state of one game session. It is not safe for concurrent
// use; callers serialize turns per session.
type Engine struct {
	id        uuid.UUID
	lang      language.Tag
	llm       services.LLMService
	store     storage.SessionStore
	logger    *slog.Logger
	prompts   *prompts.Set
	retry     RetryPolicy
	detailed  bool
	character narrative.CharacterProfile
	history   *narrative.History

	initialized bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRetryPolicy sets the completion retry policy for setup and action.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(e *Engine) { e.retry = p }
}

// WithDetailedCharacter switches character generation to the long-form
// profile prompt.
func WithDetailedCharacter() Option {
	return func(e *Engine) { e.detailed = true }
}

// New creates an engine for the given session.
func New(id uuid.UUID, lang language.Tag, llm services.LLMService, store storage.SessionStore, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		id:      id,
		lang:    lang,
		llm:     llm,
		store:   store,
		logger:  logger.With("session_id", id.String()),
		prompts: prompts.NewSet(lang),
		history: narrative.NewHistory(lang),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the session id.
func (e *Engine) ID() uuid.UUID { return e.id }

// Language returns the session language.
func (e *Engine) Language() language.Tag { return e.lang }

// Initialized reports whether the session has a playable story.
func (e *Engine) Initialized() bool { return e.initialized }

// Character returns the generated character profile.
func (e *Engine) Character() narrative.CharacterProfile { return e.character }

// complete runs one completion with the retry policy applied.
func (e *Engine) complete(ctx context.Context, stage string, req services.CompletionRequest) (string, error) {
	text, err := e.llm.Complete(ctx, req)
	if err == nil {
		return text, nil
	}

	for attempt := 1; attempt <= e.retry.MaxRetries; attempt++ {
		if e.retry.Confirm != nil && !e.retry.Confirm(stage) {
			break
		}
		e.logger.Warn("Retrying completion", "stage", stage, "attempt", attempt, "error", err)
		text, err = e.llm.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
	}
	return "", fmt.Errorf("completion failed (%s): %w", stage, err)
}

// SetupNewGame seeds the session with a story framework, generates the
// character profile and the opening scene, and persists the first turn.
// On failure the engine remains uninitialized with no partial history.
func (e *Engine) SetupNewGame(ctx context.Context, storyFramework, characterSeed string) (*TurnResult, error) {
	e.logger.Info("Setting up new game", "language", e.lang.String())

	charPrompt := e.prompts.Character(characterSeed)
	if e.detailed {
		charPrompt = e.prompts.DetailedCharacter(characterSeed)
	}
	charText, err := e.complete(ctx, StageSetup, services.CompletionRequest{Prompt: charPrompt})
	if err != nil {
		return nil, fmt.Errorf("character generation failed: %w", err)
	}
	fields := parser.ParseCharacter(charText)
	character := narrative.CharacterProfile{
		Name:        fields.Name,
		Description: fields.Description,
		Personality: fields.Personality,
		Background:  fields.Background,
		Appearance:  fields.Appearance,
		Skills:      fields.Skills,
		Location:    fields.Location,
		Status:      fields.Status,
	}

	scenePrompt := e.prompts.OpeningScene(storyFramework, character.Render(e.lang))
	sceneText, err := e.complete(ctx, StageSetup, services.CompletionRequest{
		Prompt:       scenePrompt,
		SystemPrompt: e.prompts.System(),
	})
	if err != nil {
		return nil, fmt.Errorf("opening scene generation failed: %w", err)
	}
	scene := parser.ParseStory(sceneText)

	// Compression failure on the setup path aborts the turn: a session must
	// not start with a recent log the history log can never catch up to.
	event, err := e.compressTurn(ctx, "", scene.Narrative)
	if err != nil {
		return nil, err
	}

	e.character = character
	e.history = narrative.NewHistory(e.lang)
	e.history.Add(narrative.KindFramework, "", storyFramework)
	e.history.Add(narrative.KindRecent, "", scene.Narrative)
	e.history.Add(narrative.KindHistory, "", event)
	e.initialized = true

	result := &TurnResult{Narrative: scene.Narrative, NextPrompts: scene.NextPrompts}
	if err := e.persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// TakeAction advances the story by one player turn. Calling it before setup
// returns the localized not-initialized narrative without mutating anything.
func (e *Engine) TakeAction(ctx context.Context, userInput string) (*TurnResult, error) {
	if !e.initialized {
		msgs := prompts.MessagesFor(e.lang)
		return &TurnResult{
			Narrative:   msgs.NotInitialized,
			NextPrompts: msgs.NotInitializedPrompts,
		}, nil
	}

	actionPrompt := e.prompts.Action(
		e.history.StoryFramework,
		e.character.Render(e.lang),
		e.history.Rendered(narrative.KindHistory),
		e.history.Rendered(narrative.KindRecent),
		userInput,
	)
	text, err := e.complete(ctx, StageAction, services.CompletionRequest{
		Prompt:       actionPrompt,
		SystemPrompt: e.prompts.System(),
	})
	if err != nil {
		return nil, fmt.Errorf("action completion failed: %w", err)
	}
	story := parser.ParseStory(text)

	event, err := e.compressTurn(ctx, userInput, story.Narrative)
	if err != nil {
		return nil, err
	}

	e.history.Add(narrative.KindRecent, userInput, story.Narrative)
	e.history.Add(narrative.KindHistory, userInput, event)

	result := &TurnResult{Narrative: story.Narrative, NextPrompts: story.NextPrompts}
	if err := e.persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// compressTurn runs the compression completion for one turn and extracts
// the event chain. A failure here surfaces to the caller.
func (e *Engine) compressTurn(ctx context.Context, userInput, story string) (string, error) {
	text, err := e.llm.Complete(ctx, services.CompletionRequest{
		Prompt: e.prompts.Compressor(userInput, story),
	})
	if err != nil {
		return "", fmt.Errorf("story compression failed: %w", err)
	}
	return parser.ParseEvent(text), nil
}

// GenerateWorld produces a structured world framework for the current
// session. It does not mutate the history.
func (e *Engine) GenerateWorld(ctx context.Context) (*narrative.WorldFramework, error) {
	if !e.initialized {
		return nil, fmt.Errorf("session is not initialized")
	}

	text, err := e.llm.Complete(ctx, services.CompletionRequest{
		Prompt:       e.prompts.World(e.history.StoryFramework, e.character.Render(e.lang)),
		SystemPrompt: e.prompts.WorldSystem(),
	})
	if err != nil {
		return nil, fmt.Errorf("world generation failed: %w", err)
	}

	w := parser.ParseWorld(text)
	return &narrative.WorldFramework{
		WorldStructure:    w.WorldStructure,
		ImportantNPC:      w.ImportantNPC,
		History:           w.History,
		WorldArchitecture: w.WorldArchitecture,
	}, nil
}

// LoadState restores a previously persisted session. Any load failure is
// treated as no prior session: the engine simply stays uninitialized.
func (e *Engine) LoadState(ctx context.Context) {
	snap, err := e.store.LoadSnapshot(ctx, e.id)
	if err != nil {
		e.logger.Warn("Failed to load session snapshot, starting fresh", "error", err)
		return
	}
	if snap == nil {
		return
	}
	if err := e.history.Restore(snap); err != nil {
		e.logger.Warn("Persisted snapshot invalid, starting fresh", "error", err)
		return
	}
	if e.history.StoryFramework != "" {
		// The snapshot carries no language field; sniff it from the
		// stored framework so a restored session keeps its prompts.
		if lang := prompts.Detect(e.history.StoryFramework); lang != e.lang {
			e.lang = lang
			e.prompts = prompts.NewSet(lang)
			e.history.SetLanguage(lang)
		}
		e.initialized = true
		e.logger.Info("Restored session from storage",
			"language", e.lang.String(),
			"recent_turns", e.history.Recent.Len(),
			"history_turns", e.history.Events.Len())
	}
}

// persist saves the current history snapshot. Errors are returned to the
// caller; the turn itself has already been applied.
func (e *Engine) persist(ctx context.Context) error {
	if err := e.store.SaveSnapshot(ctx, e.id, e.history.Snapshot()); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
