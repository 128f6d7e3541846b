package providers

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

const MockClientName = "mock"

// MockClient is an LLMClient for testing.
type MockClient struct {
	// Configurable behavior
	Latency      time.Duration
	ShouldFail   bool
	ResponseText string

	// State
	requestCount atomic.Int64
	lastRequest  atomic.Pointer[Request]
}

// NewMockClient creates a new mock client with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		ResponseText: `{"mock":"response"}`,
	}
}

// Name returns the client identifier.
func (c *MockClient) Name() string {
	return MockClientName
}

// Extract returns the configured response text.
func (c *MockClient) Extract(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()
	count := c.requestCount.Add(1)
	c.lastRequest.Store(req)

	if c.ShouldFail {
		return nil, fmt.Errorf("mock client configured to fail")
	}

	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	model := req.Model
	if model == "" {
		model = "mock-model"
	}

	return &Result{
		Content:          c.ResponseText,
		PromptTokens:     len(req.Prompt) / 4,
		CompletionTokens: len(c.ResponseText) / 4,
		TotalTokens:      (len(req.Prompt) + len(c.ResponseText)) / 4,
		ExecutionTime:    time.Since(start),
		Provider:         MockClientName,
		ModelUsed:        model,
		RequestID:        fmt.Sprintf("mock-%d", count),
	}, nil
}

// RequestCount returns the number of requests made.
func (c *MockClient) RequestCount() int64 {
	return c.requestCount.Load()
}

// LastRequest returns the most recent request, or nil.
func (c *MockClient) LastRequest() *Request {
	return c.lastRequest.Load()
}

// Reset resets the request counter.
func (c *MockClient) Reset() {
	c.requestCount.Store(0)
	c.lastRequest.Store(nil)
}

// Verify interface
var _ LLMClient = (*MockClient)(nil)
