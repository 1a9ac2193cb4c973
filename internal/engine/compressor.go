package engine

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/pkg/parser"
	"github.com/jwebster45206/adventure-engine/pkg/prompts"
)

// Compressor compresses story text into short event chains outside the turn
// protocol. Unlike the engine's in-turn compression, a completion failure
// here degrades to the uncompressed story rather than failing the caller.
type Compressor struct {
	llm     services.LLMService
	prompts *prompts.Set
	logger  *slog.Logger
}

// NewCompressor creates a standalone story compressor.
func NewCompressor(lang language.Tag, llm services.LLMService, logger *slog.Logger) *Compressor {
	return &Compressor{
		llm:     llm,
		prompts: prompts.NewSet(lang),
		logger:  logger,
	}
}

// Compress reduces one turn to its event chain. On completion failure the
// original story text is returned unchanged.
func (c *Compressor) Compress(ctx context.Context, userInput, story string) string {
	text, err := c.llm.Complete(ctx, services.CompletionRequest{
		Prompt: c.prompts.Compressor(userInput, story),
	})
	if err != nil {
		c.logger.Warn("Compression failed, keeping uncompressed story", "error", err)
		return story
	}
	return parser.ParseEvent(text)
}
