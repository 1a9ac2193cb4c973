package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"

	StorageRedis = "redis"
	StorageFile  = "file"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// LLM provider settings. Provider selects the primary backend; when it
	// is unavailable at startup the service falls back to Ollama once.
	Provider    string
	OpenAIKey   string
	OpenAIURL   string
	OpenAIModel string
	OllamaURL   string
	OllamaModel string

	// Session storage settings.
	Storage    string
	RedisURL   string
	DataDir    string
	SessionTTL time.Duration
}

func Load() (*Config, error) {
	c := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Provider:    strings.ToLower(getEnv("LLM_PROVIDER", ProviderOllama)),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIURL:   getEnv("OPENAI_URL", "https://api.openai.com/v1"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: getEnv("OLLAMA_MODEL", "llama3"),
		Storage:     strings.ToLower(getEnv("STORAGE_BACKEND", StorageFile)),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),
		DataDir:     getEnv("DATA_DIR", "./data"),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	c.SessionTTL = ttl

	switch c.Provider {
	case ProviderOpenAI, ProviderOllama:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}
	if c.Provider == ProviderOpenAI && c.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
	}

	switch c.Storage {
	case StorageRedis, StorageFile:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage)
	}

	return c, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
