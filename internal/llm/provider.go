// Package llm talks to hosted language models for the optional result
// insight. Every provider returns either plain text or JSON validated
// against the prompt's schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion per prompt.
type Provider interface {
	Generate(ctx context.Context, p Prompt) (*Completion, error)

	// Model returns the model identifier requests are sent to.
	Model() string
}

// Prompt is a single-turn request.
type Prompt struct {
	System string
	User   string

	// Schema, when set, asks for JSON output and is used to validate it.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Schema is a named JSON Schema document.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Completion is a provider's answer.
type Completion struct {
	// Content is validated JSON when the prompt carried a schema,
	// otherwise the raw text.
	Content json.RawMessage
	Usage   Usage
	Model   string

	// Finish is "end" or "max_tokens".
	Finish string
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is input plus output tokens.
func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }

const (
	finishEnd       = "end"
	finishMaxTokens = "max_tokens"
)

// checkSchema validates content when p has a schema.
func checkSchema(p Prompt, content json.RawMessage) error {
	if p.Schema == nil {
		return nil
	}
	return validateResponse(p.Schema, content)
}
