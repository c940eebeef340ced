package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/semsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingReader returns an error on every read.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

// trackingReader records whether it was read.
type trackingReader struct {
	read bool
}

func (r *trackingReader) Read([]byte) (int, error) {
	r.read = true
	return 0, errors.New("should not be read")
}

func TestCollect(t *testing.T) {
	t.Run("query with body from stdin", func(t *testing.T) {
		stdin := strings.NewReader("\n  This document discusses artificial intelligence.\n\n")

		query, body, err := Collect([]string{"mentions of AI"}, stdin)
		require.NoError(t, err)
		assert.Equal(t, "mentions of AI", query)
		assert.Equal(t, "This document discusses artificial intelligence.", body)
	})

	t.Run("multi-line stdin is preserved inside", func(t *testing.T) {
		query, body, err := Collect([]string{"q"}, strings.NewReader("line one\nline two\n"))
		require.NoError(t, err)
		assert.Equal(t, "q", query)
		assert.Equal(t, "line one\nline two", body)
	})

	t.Run("body from second argument skips stdin", func(t *testing.T) {
		stdin := &trackingReader{}

		query, body, err := Collect([]string{"AI", "  some body  "}, stdin)
		require.NoError(t, err)
		assert.Equal(t, "AI", query)
		assert.Equal(t, "some body", body)
		assert.False(t, stdin.read)
	})

	t.Run("body starting with a dash is not a flag", func(t *testing.T) {
		for _, b := range []string{"- first item\n- second item", "-5 degrees overnight", "--"} {
			_, body, err := Collect([]string{"AI", b}, nil)
			require.NoError(t, err, b)
			assert.Equal(t, b, body)
		}
	})

	t.Run("query is not trimmed", func(t *testing.T) {
		query, _, err := Collect([]string{" AI ", "x"}, nil)
		require.NoError(t, err)
		assert.Equal(t, " AI ", query)
	})
}

func TestCollectErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "no arguments",
			args:    nil,
			wantErr: core.ErrUsage,
			wantMsg: "semsearch [flags]",
		},
		{
			name:    "blank query",
			args:    []string{"   "},
			stdin:   "text",
			wantErr: core.ErrUsage,
		},
		{
			name:    "whitespace-only stdin",
			args:    []string{"AI"},
			stdin:   " \n\t \n",
			wantErr: core.ErrEmptyInput,
			wantMsg: "no input provided via stdin",
		},
		{
			name:    "empty stdin",
			args:    []string{"AI"},
			stdin:   "",
			wantErr: core.ErrEmptyInput,
		},
		{
			name:    "blank body argument",
			args:    []string{"AI", "  "},
			wantErr: core.ErrEmptyInput,
			wantMsg: "no input provided",
		},
		{
			name:    "flag after the query",
			args:    []string{"AI", "--lenient"},
			stdin:   "the real body",
			wantErr: core.ErrUsage,
			wantMsg: `flag "--lenient" must come before the query`,
		},
		{
			name:    "flag with value after the query",
			args:    []string{"AI", "--log-level=debug"},
			wantErr: core.ErrUsage,
			wantMsg: "must come before the query",
		},
		{
			name:    "short flag after the body",
			args:    []string{"AI", "some body", "-l"},
			wantErr: core.ErrUsage,
			wantMsg: `flag "-l"`,
		},
		{
			name:    "unquoted body split into many arguments",
			args:    []string{"AI", "some", "body"},
			wantErr: core.ErrUsage,
			wantMsg: `unexpected argument "body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Collect(tt.args, strings.NewReader(tt.stdin))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCollectStdinReadFailure(t *testing.T) {
	_, _, err := Collect([]string{"AI"}, failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read from stdin: broken pipe")
}

func TestCollectNilStdin(t *testing.T) {
	_, _, err := Collect([]string{"AI"}, nil)
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}
