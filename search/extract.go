package search

import "strings"

// ExtractJSON isolates the JSON object in a free-form model reply.
//
// The reply is trimmed and the span from the first '{' to the last '}' is
// returned, inclusive. If no such span exists the trimmed reply is returned
// unchanged so that decoding fails loudly instead of succeeding on garbage.
// The span is never repaired: unbalanced or multiple objects are passed
// through as-is.
func ExtractJSON(reply string) string {
	trimmed := strings.TrimSpace(reply)

	start := strings.IndexByte(trimmed, '{')
	end := strings.LastIndexByte(trimmed, '}')
	if start < 0 || end < start {
		return trimmed
	}
	return trimmed[start : end+1]
}
