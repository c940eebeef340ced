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


package langchain

import (
	"fmt"
	"log/slog"

	"github.com/poiesic/semsearch/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// defaultAnthropicMaxTokens is used when the config leaves MaxTokens unset;
// the messages API rejects requests without a limit.
const defaultAnthropicMaxTokens = 4096

// Provider implements ai.Provider using a langchaingo model.
type Provider struct {
	config    *ai.Config
	responder *Responder
	logger    *slog.Logger
}

// NewProvider creates a new provider for the backend named in config.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to langchaingo-specific details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newModel(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		responder: newResponder(client, config),
		logger:    slog.Default().With("component", "langchain-provider"),
	}, nil
}

// Responder returns the model session.
func (p *Provider) Responder() ai.Responder {
	return p.responder
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing provider", "backend", string(p.config.Backend))
	return nil
}

// newModel constructs the langchaingo client for config.Backend.
func newModel(config *ai.Config) (llms.Model, error) {
	switch config.Backend {
	case ai.BackendOpenAI:
		client, err := openai.New(
			openai.WithBaseURL(config.Host),
			openai.WithToken(config.Token),
			openai.WithModel(config.Model),
		)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ai.BackendOllama:
		opts := []ollama.Option{
			ollama.WithServerURL(config.Host),
			ollama.WithModel(config.Model),
		}
		if config.JSONMode {
			opts = append(opts, ollama.WithFormat("json"))
		}
		client, err := ollama.New(opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ai.BackendAnthropic:
		opts := []anthropic.Option{
			anthropic.WithToken(config.Token),
			anthropic.WithModel(config.Model),
		}
		if config.Host != "" {
			opts = append(opts, anthropic.WithBaseURL(config.Host))
		}
		client, err := anthropic.New(opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("ai config: unknown backend %q", config.Backend)
	}
}
