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


package semsearch

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/semsearch/ai"
	"github.com/poiesic/semsearch/ai/langchain"
	"github.com/poiesic/semsearch/core"
	"github.com/poiesic/semsearch/search"
)

// DefaultAsyncPoolSize bounds the goroutines used by SearchAsync.
const DefaultAsyncPoolSize = 4

const closeTimeout = 5 * time.Second

// Client is the entry point for running searches.
type Client struct {
	provider ai.Provider
	searcher *search.Searcher
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	aiConfig      *ai.Config
	provider      ai.Provider
	searchOpts    []search.Option
	asyncPoolSize int
}

// WithAIConfig sets the model configuration used to build a langchain provider.
// Ignored when WithProvider is given.
func WithAIConfig(cfg *ai.Config) Option {
	return func(o *clientOptions) {
		o.aiConfig = cfg
	}
}

// WithProvider substitutes a ready-made provider (another backend, a mock).
// The Client takes ownership and closes it in Close.
func WithProvider(provider ai.Provider) Option {
	return func(o *clientOptions) {
		o.provider = provider
	}
}

// WithSearchOptions passes options through to search.NewSearcher.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *clientOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// WithAsyncPoolSize sets the number of workers serving SearchAsync.
func WithAsyncPoolSize(size int) Option {
	return func(o *clientOptions) {
		o.asyncPoolSize = size
	}
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	// Apply options
	options := &clientOptions{
		aiConfig:      ai.DefaultConfig(), // Default if not provided
		asyncPoolSize: DefaultAsyncPoolSize,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.asyncPoolSize <= 0 {
		return nil, ErrInvalidPoolSize
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = langchain.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	searcher, err := search.NewSearcher(provider.Responder(), options.searchOpts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	pool, err := ants.NewPool(options.asyncPoolSize)
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &Client{
		provider: provider,
		searcher: searcher,
		pool:     pool,
		logger:   slog.Default().With("component", "client"),
	}, nil
}

// Search runs one semantic search and waits for the result.
func (c *Client) Search(ctx context.Context, query, body string) (*core.SearchResults, error) {
	return c.searcher.Search(ctx, query, body)
}

// SearchWithMonitor is Search with pipeline callbacks.
func (c *Client) SearchWithMonitor(ctx context.Context, query, body string, monitor search.SearchMonitor) (*core.SearchResults, error) {
	return c.searcher.SearchWithMonitor(ctx, query, body, monitor)
}

// SearchAsync runs Search on a pooled goroutine and invokes done exactly once
// with its outcome. If the work cannot be scheduled the error is returned and
// done is never called.
func (c *Client) SearchAsync(ctx context.Context, query, body string, done func(*core.SearchResults, error)) error {
	if done == nil {
		return ErrCallbackRequired
	}

	err := c.pool.Submit(func() {
		done(c.searcher.Search(ctx, query, body))
	})
	if err != nil {
		c.logger.Error("could not schedule async search", "err", err)
		return err
	}
	return nil
}

// Close waits up to closeTimeout for in-flight async searches, then releases
// the pool and the provider.
func (c *Client) Close() error {
	if err := c.pool.ReleaseTimeout(closeTimeout); err != nil {
		c.logger.Warn("async searches still running at close", "err", err)
	}

	if err := c.provider.Close(); err != nil {
		c.logger.Error("error closing AI provider", "err", err)
		return err
	}
	return nil
}
