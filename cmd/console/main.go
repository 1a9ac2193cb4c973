package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ConsoleConfig holds settings for the console client.
type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

func loadConfig() *ConsoleConfig {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &ConsoleConfig{
		APIBaseURL: baseURL,
		Timeout:    5 * time.Minute, // generous for slow model responses
	}
}

// testConnection verifies the API is reachable before starting the UI.
func testConnection(cfg *ConsoleConfig) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(cfg.APIBaseURL + "/health")
	if err != nil {
		return fmt.Errorf("failed to connect to API at %s: %w", cfg.APIBaseURL, err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API health check returned status %d", resp.StatusCode)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("failed to parse health response: %w", err)
	}
	if health.Status != "healthy" {
		return fmt.Errorf("API reported status %q", health.Status)
	}
	return nil
}

func main() {
	cfg := loadConfig()

	if err := testConnection(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Make sure the API server is running at %s\n", cfg.APIBaseURL)
		os.Exit(1)
	}

	ui := NewConsoleUI(cfg)
	p := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running console: %v\n", err)
		os.Exit(1)
	}
}
