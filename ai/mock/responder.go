package mock

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MockResponder is a test double for ai.Responder.
// It allows custom behavior injection via function fields.
type MockResponder struct {
	// RespondFunc is called by Respond if set.
	// If nil, Reply is returned, or the default empty result when Reply is empty.
	RespondFunc func(ctx context.Context, instructions, prompt string) (string, error)

	// Reply is returned verbatim when RespondFunc is nil.
	Reply string

	mu               sync.Mutex
	callCount        int
	lastInstructions string
	lastPrompt       string
}

// NewMockResponder creates a mock responder with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// WithReply sets a fixed reply and returns the responder for chaining.
func (m *MockResponder) WithReply(reply string) *MockResponder {
	m.Reply = reply
	return m
}

// WithRespondFunc sets custom behavior and returns the responder for chaining.
func (m *MockResponder) WithRespondFunc(fn func(ctx context.Context, instructions, prompt string) (string, error)) *MockResponder {
	m.RespondFunc = fn
	return m
}

// Respond records the call and returns the configured reply.
func (m *MockResponder) Respond(ctx context.Context, instructions, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastInstructions = instructions
	m.lastPrompt = prompt
	fn := m.RespondFunc
	reply := m.Reply
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, instructions, prompt)
	}
	if reply != "" {
		return reply, nil
	}

	// Default: valid empty result
	return emptyResult(prompt), nil
}

// CallCount returns the number of times Respond was called.
func (m *MockResponder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastInstructions returns the instructions from the most recent call.
func (m *MockResponder) LastInstructions() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastInstructions
}

// LastPrompt returns the prompt from the most recent call.
func (m *MockResponder) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}

// Reset clears the call count, captured prompts, and custom behavior.
func (m *MockResponder) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastInstructions = ""
	m.lastPrompt = ""
	m.RespondFunc = nil
	m.Reply = ""
}

// emptyResult builds a no-match reply, echoing the first line of the prompt.
func emptyResult(prompt string) string {
	query, _, _ := strings.Cut(prompt, "\n")
	data, _ := json.Marshal(map[string]any{
		"matches":        []any{},
		"totalMatches":   0,
		"queryProcessed": strings.TrimSpace(query),
	})
	return string(data)
}
