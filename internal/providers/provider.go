// Package providers contains the model clients used for document extraction.
//
// The extraction pipeline talks to a provider through the LLMClient
// interface so tests can substitute a deterministic mock without any
// network dependency.
package providers

import (
	"context"
	"time"
)

// LLMClient submits a vision extraction request to a hosted model and
// returns the raw response text.
type LLMClient interface {
	// Extract sends the prompt and page images in a single call.
	Extract(ctx context.Context, req *Request) (*Result, error)

	// Name returns the client identifier (e.g., "openai").
	Name() string
}

// Request is a single extraction call to a vision model.
type Request struct {
	// System is the system prompt.
	System string `json:"system"`

	// Prompt is the user instruction text, including the serialized template.
	Prompt string `json:"prompt"`

	// Images are JPEG-encoded page renders, attached in page order.
	Images [][]byte `json:"-"`

	// Model selection (client default if empty).
	Model string `json:"model,omitempty"`

	// Generation parameters.
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Timeout     time.Duration `json:"-"`

	// RequestID is generated by the caller if empty.
	RequestID string `json:"-"`
}

// Result is the complete response from an extraction call.
type Result struct {
	// Content is the raw response text, retained for debugging even when
	// it fails to parse as JSON downstream.
	Content string `json:"content"`

	// Token counts.
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	// Timing.
	ExecutionTime time.Duration `json:"execution_time"`

	// Provider info.
	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`

	// Request tracking.
	RequestID string `json:"request_id"`
}
