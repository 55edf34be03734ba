package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatchops/internal/adapters/out/assistant"
	"dispatchops/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Reply(t *testing.T) {
	t.Run("should relay prompt and history to the endpoint", func(t *testing.T) {
		var captured struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			err := json.NewDecoder(r.Body).Decode(&captured)
			require.NoError(t, err)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"role": "assistant", "content": "Two orders are in progress."}},
				},
			})
		}))
		defer server.Close()

		client, err := assistant.NewClient(server.URL, "secret-key", "ops-helper-1")
		require.NoError(t, err)

		history := []ports.AssistantMessage{
			{Role: "user", Content: "Hello"},
			{Role: "assistant", Content: "Hi, how can I help?"},
		}
		answer, err := client.Reply(t.Context(), "How many orders are in progress?", history)

		require.NoError(t, err)
		assert.Equal(t, "Two orders are in progress.", answer)

		assert.Equal(t, "ops-helper-1", captured.Model)
		require.Len(t, captured.Messages, 3)
		assert.Equal(t, "Hello", captured.Messages[0].Content)
		assert.Equal(t, "assistant", captured.Messages[1].Role)
		assert.Equal(t, "How many orders are in progress?", captured.Messages[2].Content)
	})

	t.Run("should fail on non-200 responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client, err := assistant.NewClient(server.URL, "", "ops-helper-1")
		require.NoError(t, err)

		_, err = client.Reply(t.Context(), "Hello", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("should fail when the response has no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		client, err := assistant.NewClient(server.URL, "", "ops-helper-1")
		require.NoError(t, err)

		_, err = client.Reply(t.Context(), "Hello", nil)

		require.Error(t, err)
	})

	t.Run("should reject empty prompts", func(t *testing.T) {
		client, err := assistant.NewClient("http://localhost:1", "", "ops-helper-1")
		require.NoError(t, err)

		_, err = client.Reply(t.Context(), "", nil)

		require.Error(t, err)
	})

	t.Run("should require endpoint and model", func(t *testing.T) {
		_, err := assistant.NewClient("", "", "ops-helper-1")
		require.Error(t, err)

		_, err = assistant.NewClient("http://localhost:1", "", "")
		require.Error(t, err)
	})
}

type failingAssistant struct{}

func (failingAssistant) Reply(context.Context, string, []ports.AssistantMessage) (string, error) {
	return "", errors.New("connection refused")
}

type cannedAssistant struct {
	answer string
}

func (a cannedAssistant) Reply(context.Context, string, []ports.AssistantMessage) (string, error) {
	return a.answer, nil
}

func TestWithFallback_Reply(t *testing.T) {
	t.Run("should pass through successful replies", func(t *testing.T) {
		wrapped := assistant.NewWithFallback(cannedAssistant{answer: "All quiet."})

		answer, err := wrapped.Reply(t.Context(), "Status?", nil)

		require.NoError(t, err)
		assert.Equal(t, "All quiet.", answer)
	})

	t.Run("should mask provider failures with the canned reply", func(t *testing.T) {
		wrapped := assistant.NewWithFallback(failingAssistant{})

		answer, err := wrapped.Reply(t.Context(), "Status?", nil)

		require.NoError(t, err)
		assert.Equal(t, assistant.FallbackReply, answer)
	})
}
