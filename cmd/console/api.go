package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jwebster45206/adventure-engine/pkg/game"
)

// postJSON sends a request body and decodes the response into out.
func postJSON(client *http.Client, url string, body interface{}, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func initializeSession(client *http.Client, baseURL, language string) (*game.InitializeResponse, error) {
	var resp game.InitializeResponse
	err := postJSON(client, baseURL+"/v1/games", game.InitializeRequest{Language: language}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("initialize failed: %s", resp.Message)
	}
	return &resp, nil
}

func setupGame(client *http.Client, baseURL string, req game.SetupRequest) (*game.TurnResponse, error) {
	var resp game.TurnResponse
	if err := postJSON(client, baseURL+"/v1/games/setup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func takeAction(client *http.Client, baseURL string, req game.ActionRequest) (*game.TurnResponse, error) {
	var resp game.TurnResponse
	if err := postJSON(client, baseURL+"/v1/games/action", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
