package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/adventure-engine/internal/config"
)

// NewLLMService builds the configured LLM backend and initializes its model.
// If the primary backend fails to initialize, it falls back to Ollama once;
// a failure of the fallback is returned to the caller.
func NewLLMService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (LLMService, error) {
	svc, model := newBackend(cfg, logger)

	if err := svc.InitModel(ctx, model); err != nil {
		if cfg.Provider == config.ProviderOllama {
			return nil, fmt.Errorf("failed to initialize ollama: %w", err)
		}

		logger.Warn("Primary LLM backend unavailable, falling back to Ollama",
			"provider", cfg.Provider,
			"error", err)

		fallback := NewOllamaService(cfg.OllamaURL, cfg.OllamaModel, logger)
		if ferr := fallback.InitModel(ctx, cfg.OllamaModel); ferr != nil {
			return nil, fmt.Errorf("fallback to ollama failed: %w (primary: %v)", ferr, err)
		}
		return fallback, nil
	}
	return svc, nil
}

func newBackend(cfg *config.Config, logger *slog.Logger) (LLMService, string) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAIURL, cfg.OpenAIKey, cfg.OpenAIModel, logger), cfg.OpenAIModel
	default:
		return NewOllamaService(cfg.OllamaURL, cfg.OllamaModel, logger), cfg.OllamaModel
	}
}
