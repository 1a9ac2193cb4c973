package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultOpenAITemperature = 0.9
	DefaultOpenAIMaxTokens   = 2000
)

// OpenAIService implements LLMService for any OpenAI-compatible chat
// completions API.
type OpenAIService struct {
	baseURL    string
	apiKey     string
	modelName  string
	httpClient *http.Client
	logger     *slog.Logger
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIChatRequest represents the request structure for chat completions
type OpenAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Stream      bool            `json:"stream"`
}

// OpenAIChatResponse represents the response structure for chat completions
type OpenAIChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewOpenAIService creates a new OpenAI-compatible service instance
func NewOpenAIService(baseURL, apiKey, modelName string, logger *slog.Logger) *OpenAIService {
	return &OpenAIService{
		baseURL:   baseURL,
		apiKey:    apiKey,
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
}

// InitModel verifies the API is reachable with the configured credentials.
// OpenAI-compatible backends don't require explicit model initialization.
func (s *OpenAIService) InitModel(ctx context.Context, modelName string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	s.modelName = modelName
	s.logger.Info("OpenAI-compatible backend ready", "model", modelName)
	return nil
}

// Complete generates a completion via the chat completions endpoint
func (s *OpenAIService) Complete(ctx context.Context, creq CompletionRequest) (string, error) {
	messages := make([]openAIMessage, 0, 2)
	if creq.SystemPrompt != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: creq.SystemPrompt})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: creq.Prompt})

	chatReq := OpenAIChatRequest{
		Model:       s.modelName,
		Messages:    messages,
		Temperature: DefaultOpenAITemperature,
		MaxTokens:   DefaultOpenAIMaxTokens,
		Stream:      false,
	}

	jsonBody, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var chatResp OpenAIChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if chatResp.Error != nil {
			msg = chatResp.Error.Message
		}
		s.logger.Error("Chat completions API returned error",
			"status_code", resp.StatusCode,
			"message", msg)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, msg)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("API response contained no choices")
	}
	return chatResp.Choices[0].Message.Content, nil
}
