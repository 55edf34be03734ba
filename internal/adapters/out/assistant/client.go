// Package assistant provides the HTTP adapter for the operations chat
// helper. The adapter speaks a chat-completions REST shape; any
// OpenAI-compatible endpoint works. No vendor SDK is linked.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dispatchops/internal/core/ports"
	"dispatchops/internal/pkg/errs"
)

const defaultTimeout = 30 * time.Second

// Client relays assistant conversations to a chat-completions endpoint.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates an assistant client for the given endpoint.
func NewClient(apiURL, apiKey, model string) (*Client, error) {
	if apiURL == "" {
		return nil, errs.NewValueIsRequiredError("apiURL")
	}
	if model == "" {
		return nil, errs.NewValueIsRequiredError("model")
	}

	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Reply sends the conversation to the model and returns its answer.
func (c *Client) Reply(ctx context.Context, prompt string, history []ports.AssistantMessage) (string, error) {
	if prompt == "" {
		return "", errs.NewValueIsRequiredError("prompt")
	}

	messages := make([]chatMessage, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("encode assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call assistant endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("assistant endpoint returned %d: %s", resp.StatusCode, payload)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode assistant response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("assistant response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
