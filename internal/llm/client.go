// Package llm provides the language-model clients behind natural-language
// scheduling: a shared chat interface, provider implementations, and the
// suggester that turns free-form text into planner items.
package llm

import (
	"context"
)

// Message is one turn of a chat exchange: a system prompt, user input, or
// an earlier model reply.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the provider-neutral chat surface the suggester runs on.
type Client interface {
	// Chat sends the conversation and returns the reply text.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON sends the conversation expecting a JSON reply and decodes
	// it into result.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}
