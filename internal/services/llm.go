package services

import "context"

// CompletionRequest is a single-shot completion: one prompt, optionally
// paired with a system prompt.
type CompletionRequest struct {
	Prompt       string
	SystemPrompt string
}

// LLMService defines the interface for interacting with an LLM backend
type LLMService interface {
	// InitModel verifies the backend is reachable and the model is usable,
	// pulling or provisioning it where the backend supports that
	InitModel(ctx context.Context, modelName string) error

	// Complete generates a completion for the request
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
