package main

import (
	"context"
	"fmt"
	stdlog "log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/handlers"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/middleware"
	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Adventure Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.Provider,
		"storage", cfg.Storage)

	// Session storage
	var store storage.SessionStore
	switch cfg.Storage {
	case config.StorageRedis:
		redisStore := storage.NewRedisStore(cfg.RedisURL, cfg.SessionTTL, log)
		storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := redisStore.WaitForConnection(storageCtx); err != nil {
			storageCancel()
			log.Error("Failed to connect to storage", "error", err)
			os.Exit(1)
		}
		storageCancel()
		store = redisStore
	default:
		fileStore, err := storage.NewFileStore(cfg.DataDir, log)
		if err != nil {
			log.Error("Failed to open file storage", "error", err)
			os.Exit(1)
		}
		store = fileStore
	}
	log.Info("Storage ready")

	// LLM backend, with one-shot Ollama fallback when the primary fails
	llmCtx, llmCancel := context.WithTimeout(context.Background(), 10*time.Minute)
	llmService, err := services.NewLLMService(llmCtx, cfg, log)
	llmCancel()
	if err != nil {
		log.Error("Failed to initialize LLM backend", "error", err)
		os.Exit(1)
	}

	registry := session.NewRegistry(cfg.SessionTTL, log)
	defer registry.Close()

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	gameHandler := handlers.NewGameHandler(registry, llmService, store, log)
	gameHandler.LLMFor = llmOverrides(cfg, log)
	mux.Handle("/v1/games", gameHandler)
	mux.Handle("/v1/games/setup", gameHandler)
	mux.Handle("/v1/games/action", gameHandler)
	mux.Handle("/v1/games/world", gameHandler)

	streamHandler := handlers.NewStreamHandler(gameHandler, log)
	mux.Handle("/v1/games/setup/stream", streamHandler)
	mux.Handle("/v1/games/action/stream", streamHandler)

	handler := middleware.Logger(log, mux)
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the streaming endpoints pace their own output
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

// llmOverrides builds per-session backends for initialize requests that
// override the configured model or backend type.
func llmOverrides(cfg *config.Config, log *slog.Logger) func(model, backendType string) (services.LLMService, error) {
	return func(model, backendType string) (services.LLMService, error) {
		provider := backendType
		if provider == "" || provider == "primary" {
			provider = cfg.Provider
		}

		switch provider {
		case config.ProviderOpenAI:
			if model == "" {
				model = cfg.OpenAIModel
			}
			svc := services.NewOpenAIService(cfg.OpenAIURL, cfg.OpenAIKey, model, log)
			if err := svc.InitModel(context.Background(), model); err != nil {
				return nil, err
			}
			return svc, nil
		case config.ProviderOllama:
			if model == "" {
				model = cfg.OllamaModel
			}
			svc := services.NewOllamaService(cfg.OllamaURL, model, log)
			if err := svc.InitModel(context.Background(), model); err != nil {
				return nil, err
			}
			return svc, nil
		default:
			return nil, fmt.Errorf("unknown backend type %q", backendType)
		}
	}
}
