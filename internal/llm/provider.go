// Package llm abstracts the language model providers behind a single
// Provider interface. The tutoring layer talks only to this package; the
// concrete SDK adapters, retries and request logging live behind it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured completions.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema the content is JSON validated against it;
	// otherwise it is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is configured for.
	ModelID() string
}

// Request describes one model call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Most calls here are single-turn:
	// one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and the response is validated against it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case ("practice-problems").
	Name string

	// Description guides the model on what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token count for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
