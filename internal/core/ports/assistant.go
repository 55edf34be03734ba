package ports

import (
	"context"
)

// AssistantMessage is one turn of an assistant conversation.
type AssistantMessage struct {
	// Role is "user" or "assistant".
	Role string

	// Content is the plain-text body of the turn.
	Content string
}

// Assistant defines the contract for the operations chat helper. The
// application layer builds the grounding context from ledger data it is
// allowed to read; implementations only relay the conversation to a
// language model. Assistant output is advisory text and never feeds back
// into commands.
type Assistant interface {
	// Reply produces the assistant's answer to a prompt given the prior
	// conversation turns, oldest first.
	Reply(ctx context.Context, prompt string, history []AssistantMessage) (string, error)
}
