package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInstructions(t *testing.T) {
	instructions := BuildInstructions()

	assert.Equal(t, instructions, BuildInstructions(), "instructions must be deterministic")

	for _, want := range []string{
		`"matches"`,
		`"relevanceScore"`,
		`"startIndex"`,
		`"endIndex"`,
		`"reasoning"`,
		`"totalMatches"`,
		`"queryProcessed"`,
		"0.0 to 1.0",
		"not a single word",
		"ONLY",
		"empty matches array",
		"markdown",
		"synonyms",
	} {
		assert.Contains(t, instructions, want)
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := BuildPrompt("mentions of AI", "This document discusses artificial intelligence.")
		b := BuildPrompt("mentions of AI", "This document discusses artificial intelligence.")
		assert.Equal(t, a, b)
	})

	t.Run("embeds query and body", func(t *testing.T) {
		prompt := BuildPrompt("mentions of AI", "line one\nline two")

		assert.True(t, strings.HasPrefix(prompt, `Query: "mentions of AI"`))
		assert.Contains(t, prompt, "Body text to search:\nline one\nline two\n")
		assert.Contains(t, prompt, "Return ONLY the JSON response")
	})

	t.Run("format verbs in input are literal", func(t *testing.T) {
		prompt := BuildPrompt("100%s", "50% off %d")

		assert.Contains(t, prompt, `Query: "100%s"`)
		assert.Contains(t, prompt, "50% off %d")
	})

	t.Run("different inputs differ", func(t *testing.T) {
		assert.NotEqual(t, BuildPrompt("a", "body"), BuildPrompt("b", "body"))
	})
}
