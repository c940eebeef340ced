package search

import (
	"errors"
	"testing"

	"github.com/poiesic/semsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("minimal valid reply", func(t *testing.T) {
		results, err := Decode(`{"matches":[],"totalMatches":0,"queryProcessed":"q"}`)
		require.NoError(t, err)

		assert.NotNil(t, results.Matches)
		assert.Empty(t, results.Matches)
		assert.Equal(t, 0, results.TotalMatches)
		assert.Equal(t, "q", results.QueryProcessed)
	})

	t.Run("full reply wrapped in prose", func(t *testing.T) {
		reply := `Here you go:
{"matches":[{"text":"artificial intelligence","relevanceScore":0.95,"startIndex":24,"endIndex":47,"reasoning":"synonym"},
{"text":"machine learning concepts","relevanceScore":0.7,"startIndex":52,"endIndex":77,"reasoning":"related field"}],
"totalMatches":2,"queryProcessed":"AI"}
Hope this helps.`

		results, err := Decode(reply)
		require.NoError(t, err)
		require.Len(t, results.Matches, 2)
		assert.Equal(t, core.SearchMatch{
			Text:           "artificial intelligence",
			RelevanceScore: 0.95,
			StartIndex:     24,
			EndIndex:       47,
			Reasoning:      "synonym",
		}, results.Matches[0])
		assert.Equal(t, "machine learning concepts", results.Matches[1].Text)
		assert.Equal(t, 2, results.TotalMatches)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		results, err := Decode(`{"matches":[{"text":"a b","relevanceScore":1,"startIndex":0,"endIndex":3,"reasoning":"r","confidence":"high"}],"totalMatches":1,"queryProcessed":"q","model":"x"}`)
		require.NoError(t, err)
		assert.Len(t, results.Matches, 1)
	})

	t.Run("differently cased duplicates are unknown fields", func(t *testing.T) {
		results, err := Decode(`{"matches":[],"Matches":[{"text":"x"}],"totalMatches":0,"TotalMatches":9,"queryProcessed":"q"}`)
		require.NoError(t, err)
		assert.Empty(t, results.Matches)
		assert.Equal(t, 0, results.TotalMatches)
	})

	t.Run("semantic invariants are not checked", func(t *testing.T) {
		results, err := Decode(`{"matches":[{"text":"","relevanceScore":7,"startIndex":9,"endIndex":1,"reasoning":""}],"totalMatches":5,"queryProcessed":""}`)
		require.NoError(t, err)
		assert.Equal(t, 7.0, results.Matches[0].RelevanceScore)
		assert.Equal(t, 5, results.TotalMatches)
	})
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantMsg string
	}{
		{
			name:    "missing totalMatches",
			reply:   `{"matches":[],"queryProcessed":"q"}`,
			wantMsg: `"totalMatches"`,
		},
		{
			name:    "missing matches",
			reply:   `{"totalMatches":0,"queryProcessed":"q"}`,
			wantMsg: `"matches"`,
		},
		{
			name:    "null matches",
			reply:   `{"matches":null,"totalMatches":0,"queryProcessed":"q"}`,
			wantMsg: `"matches"`,
		},
		{
			name:    "missing queryProcessed",
			reply:   `{"matches":[],"totalMatches":0}`,
			wantMsg: `"queryProcessed"`,
		},
		{
			name:    "match missing reasoning",
			reply:   `{"matches":[{"text":"a","relevanceScore":0.5,"startIndex":0,"endIndex":1}],"totalMatches":1,"queryProcessed":"q"}`,
			wantMsg: `matches[0]: missing required field "reasoning"`,
		},
		{
			name:    "null match",
			reply:   `{"matches":[null],"totalMatches":1,"queryProcessed":"q"}`,
			wantMsg: "match is null",
		},
		{
			name:    "score as string",
			reply:   `{"matches":[{"text":"a","relevanceScore":"0.5","startIndex":0,"endIndex":1,"reasoning":"r"}],"totalMatches":1,"queryProcessed":"q"}`,
			wantMsg: "relevanceScore",
		},
		{
			name:    "fractional index",
			reply:   `{"matches":[{"text":"a","relevanceScore":0.5,"startIndex":0.5,"endIndex":1,"reasoning":"r"}],"totalMatches":1,"queryProcessed":"q"}`,
			wantMsg: "startIndex",
		},
		{
			name:    "keys in the wrong case",
			reply:   `{"Matches":[],"TOTALMATCHES":0,"QueryProcessed":"q"}`,
			wantMsg: `missing required field "matches"`,
		},
		{
			name:    "capitalized totalMatches",
			reply:   `{"matches":[],"TotalMatches":0,"queryProcessed":"q"}`,
			wantMsg: `missing required field "totalMatches"`,
		},
		{
			name:    "upper case matches",
			reply:   `{"MATCHES":[],"totalMatches":0,"queryProcessed":"q"}`,
			wantMsg: `missing required field "matches"`,
		},
		{
			name:    "match with capitalized text",
			reply:   `{"matches":[{"Text":"a b","relevanceScore":0.5,"startIndex":0,"endIndex":3,"reasoning":"r"}],"totalMatches":1,"queryProcessed":"q"}`,
			wantMsg: `matches[0]: missing required field "text"`,
		},
		{
			name:    "null text",
			reply:   `{"matches":[{"text":null,"relevanceScore":0.5,"startIndex":0,"endIndex":3,"reasoning":"r"}],"totalMatches":1,"queryProcessed":"q"}`,
			wantMsg: `matches[0]: missing required field "text"`,
		},
		{
			name:    "match is not an object",
			reply:   `{"matches":[3],"totalMatches":1,"queryProcessed":"q"}`,
			wantMsg: "matches[0]: json: cannot unmarshal number",
		},
		{
			name:    "matches is an object",
			reply:   `{"matches":{},"totalMatches":0,"queryProcessed":"q"}`,
			wantMsg: `field "matches"`,
		},
		{
			name:    "no json at all",
			reply:   "I'm sorry, I can't help with that.",
			wantMsg: "invalid character",
		},
		{
			name:    "unbalanced braces",
			reply:   `{"matches":[],"totalMatches":0,"queryProcessed":"q"`,
			wantMsg: "failed to parse JSON response",
		},
		{
			name:    "two objects",
			reply:   `{"matches":[],"totalMatches":0,"queryProcessed":"q"} {"extra":true}`,
			wantMsg: "invalid character",
		},
		{
			name:    "array instead of object",
			reply:   `[]`,
			wantMsg: "cannot unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Decode(tt.reply)
			require.Error(t, err)
			assert.Nil(t, results)
			assert.ErrorIs(t, err, core.ErrDecode)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.NotNil(t, decodeErr.Err)
		})
	}
}

func TestDecodeErrorPreservesRawReply(t *testing.T) {
	reply := "  Sure! here is {broken json}  "

	_, err := Decode(reply)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "Sure! here is {broken json}", decodeErr.Raw)
	assert.Contains(t, err.Error(), "failed to parse JSON response: ")
	assert.Contains(t, err.Error(), ". Raw response: Sure! here is {broken json}")
}

func TestDecodeErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := &DecodeError{Raw: "x", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, core.ErrDecode)
	assert.False(t, errors.Is(err, core.ErrUpstream))
}
