// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/semsearch/ai"
	"github.com/poiesic/semsearch/core"
)

const (
	// DefaultMaxAttempts makes a single model call with no retry.
	DefaultMaxAttempts = 1
	// DefaultRetryDelay is the base backoff delay when retries are enabled.
	DefaultRetryDelay = time.Second
)

// Searcher runs semantic searches by delegating to a language model.
type Searcher struct {
	responder   ai.Responder
	maxAttempts int
	retryDelay  time.Duration
	strict      bool
	logger      *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMaxAttempts sets how many times the model is called before an upstream
// failure is reported. Default is 1 (no retry).
func WithMaxAttempts(n int) Option {
	return func(s *Searcher) error {
		if n <= 0 {
			return ErrInvalidMaxAttempts
		}
		s.maxAttempts = n
		return nil
	}
}

// WithRetryDelay sets the base delay for exponential backoff between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(s *Searcher) error {
		if d < 0 {
			return ErrInvalidRetryDelay
		}
		s.retryDelay = d
		return nil
	}
}

// WithStrictValidation toggles core.ValidateSearchResults on decoded replies.
// Default is true. When disabled, any schema-conformant reply is accepted.
func WithStrictValidation(strict bool) Option {
	return func(s *Searcher) error {
		s.strict = strict
		return nil
	}
}

// NewSearcher creates a new searcher around responder.
func NewSearcher(responder ai.Responder, opts ...Option) (*Searcher, error) {
	if responder == nil {
		return nil, ErrResponderRequired
	}

	s := &Searcher{
		responder:   responder,
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
		strict:      true,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.logger = s.logger.With("component", "searcher")
	return s, nil
}

// Search asks the model for passages of body that semantically match query.
func (s *Searcher) Search(ctx context.Context, query, body string) (*core.SearchResults, error) {
	return s.SearchWithMonitor(ctx, query, body, nil)
}

// SearchWithMonitor is Search with a monitor that receives a callback at each
// pipeline stage. A nil monitor is allowed.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query, body string, monitor SearchMonitor) (*core.SearchResults, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)
	results, err := s.search(ctx, query, body, monitor)
	monitor.Finish(results, err)
	return results, err
}

func (s *Searcher) search(ctx context.Context, query, body string, monitor SearchMonitor) (*core.SearchResults, error) {
	if strings.TrimSpace(query) == "" {
		return nil, core.ErrEmptyQuery
	}
	if strings.TrimSpace(body) == "" {
		return nil, core.ErrEmptyInput
	}

	logger := s.logger.With("request", fmt.Sprintf("%016x", uint64(core.RequestIDFromInput(query, body))))

	instructions := BuildInstructions()
	prompt := BuildPrompt(query, body)
	monitor.AfterPromptBuilt(instructions, prompt)

	var reply string
	err := RetryWithBackoff(ctx, s.maxAttempts, s.retryDelay, func(ctx context.Context, attempt int) error {
		r, err := s.responder.Respond(ctx, instructions, prompt)
		monitor.AfterResponse(attempt, r, err)
		if errors.Is(err, ai.ErrNonRetryable) {
			return Permanent(err)
		}
		if err != nil {
			return err
		}
		reply = r
		return nil
	})
	if err != nil {
		logger.Error("model request failed", "attempts", s.maxAttempts, "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrUpstream, err)
	}

	monitor.AfterExtraction(ExtractJSON(reply))

	results, err := Decode(reply)
	if err != nil {
		logger.Warn("could not decode model reply", "err", err)
		return nil, err
	}

	if s.strict {
		if err := core.ValidateSearchResults(results); err != nil {
			logger.Warn("model reply failed validation", "err", err)
			return nil, &DecodeError{Raw: strings.TrimSpace(reply), Err: err}
		}
	}

	logger.Debug("search complete", "matches", len(results.Matches))
	return results, nil
}
