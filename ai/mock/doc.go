// Package mock provides test double implementations of the ai interfaces.
//
// MockResponder and MockProvider let tests run the search pipeline without a
// model service and with fully deterministic replies.
//
// # Usage in Tests
//
//	// Fixed reply
//	responder := mock.NewMockResponder().WithReply(`{"matches":[],"totalMatches":0,"queryProcessed":"x"}`)
//
//	// Custom behavior injection
//	responder := mock.NewMockResponder().
//	    WithRespondFunc(func(ctx context.Context, instructions, prompt string) (string, error) {
//	        return "", errors.New("quota exceeded")
//	    })
//
//	// Check call counts and captured prompts
//	count := responder.CallCount()
//	prompt := responder.LastPrompt()
//
// # Default Behavior
//
// Without a configured reply, MockResponder answers with a valid empty result
// whose queryProcessed echoes the prompt's query line.
package mock
