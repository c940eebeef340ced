package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "object surrounded by prose",
			reply: `Sure! {"matches":[],"totalMatches":0,"queryProcessed":"x"} Thanks.`,
			want:  `{"matches":[],"totalMatches":0,"queryProcessed":"x"}`,
		},
		{
			name:  "bare object",
			reply: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "surrounding whitespace",
			reply: "\n\t  {\"a\":1}  \n",
			want:  `{"a":1}`,
		},
		{
			name:  "markdown fence",
			reply: "```json\n{\"a\":{\"b\":2}}\n```",
			want:  `{"a":{"b":2}}`,
		},
		{
			name:  "no braces returns trimmed input",
			reply: "  I could not find anything.  ",
			want:  "I could not find anything.",
		},
		{
			name:  "only opening brace",
			reply: " { unterminated ",
			want:  "{ unterminated",
		},
		{
			name:  "closing brace before opening brace",
			reply: "} backwards {",
			want:  "} backwards {",
		},
		{
			name:  "multiple objects over-capture",
			reply: `first {"a":1} and then {"b":2} done`,
			want:  `{"a":1} and then {"b":2}`,
		},
		{
			name:  "unbalanced braces passed through",
			reply: `{"a":{"b":1}`,
			want:  `{"a":{"b":1}`,
		},
		{
			name:  "empty reply",
			reply: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.reply))
		})
	}
}
