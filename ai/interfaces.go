package ai

import "context"

// Responder sends a single instruction/prompt pair to a language model and
// returns its free-form textual reply.
// Implementations must be thread-safe for concurrent use.
type Responder interface {
	// Respond issues one non-streaming request. instructions are delivered as
	// the system message and prompt as the user message.
	// The reply is untrusted, unstructured text.
	// Returns an error if the model service fails.
	Respond(ctx context.Context, instructions, prompt string) (string, error)
}

// Provider owns a Responder and the resources behind it.
type Provider interface {
	// Responder returns the model session.
	// The returned Responder is safe for concurrent use.
	Responder() Responder

	// Close releases resources held by the provider.
	// After Close is called, the provider and its Responder should not be used.
	Close() error
}
