package assistant

import (
	"context"
	"log/slog"

	"dispatchops/internal/core/ports"
)

// FallbackReply is what operators see whenever the underlying provider
// fails. Vendor error details stay in the logs and never reach the user.
const FallbackReply = "The assistant is temporarily unavailable. Please try again in a moment."

// WithFallback wraps an Assistant so that every provider failure is
// converted into a user-safe canned reply.
type WithFallback struct {
	inner ports.Assistant
}

// NewWithFallback decorates the given assistant with failure masking.
func NewWithFallback(inner ports.Assistant) *WithFallback {
	return &WithFallback{inner: inner}
}

// Reply delegates to the wrapped assistant; on any error it logs the
// cause and returns FallbackReply with a nil error.
func (a *WithFallback) Reply(ctx context.Context, prompt string, history []ports.AssistantMessage) (string, error) {
	answer, err := a.inner.Reply(ctx, prompt, history)
	if err != nil {
		slog.Error("assistant provider failed", "error", err)
		return FallbackReply, nil
	}

	return answer, nil
}
