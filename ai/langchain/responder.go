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
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/semsearch/ai"
	"github.com/tmc/langchaingo/llms"
)

// ErrNoChoices is returned when the model replies without any content choice.
var ErrNoChoices = errors.New("model returned no choices")

// Responder implements ai.Responder on top of any langchaingo llms.Model.
type Responder struct {
	client   llms.Model
	backend  ai.Backend
	model    string
	callOpts []llms.CallOption
	mapper   *llms.ErrorMapper
	logger   *slog.Logger
}

// newResponder wraps an already constructed model.
// config must have been validated.
func newResponder(client llms.Model, config *ai.Config) *Responder {
	callOpts := []llms.CallOption{llms.WithTemperature(config.Temperature)}
	if maxTokens := effectiveMaxTokens(config); maxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(maxTokens))
	}
	if config.JSONMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	return &Responder{
		client:   client,
		backend:  config.Backend,
		model:    config.Model,
		callOpts: callOpts,
		mapper:   errorMapper(config.Backend),
		logger:   slog.Default().With("component", "langchain-responder", "backend", string(config.Backend)),
	}
}

// NewResponder creates a Responder for the backend named in config.
//
// Returns ai.Responder interface to enforce abstraction.
func NewResponder(config *ai.Config) (ai.Responder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newModel(config)
	if err != nil {
		return nil, err
	}
	return newResponder(client, config), nil
}

// Respond sends instructions as the system message and prompt as the user
// message and returns the text of the first choice.
func (r *Responder) Respond(ctx context.Context, instructions, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(instructions),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	r.logger.Debug("sending request", "model", r.model, "prompt_length", len(prompt))

	response, err := r.client.GenerateContent(ctx, content, r.callOpts...)
	if err != nil {
		r.logger.Error("failed to generate content", "model", r.model, "err", err)
		return "", r.classify(err)
	}

	if len(response.Choices) < 1 {
		r.logger.Warn("no choices returned from model", "model", r.model)
		return "", ErrNoChoices
	}

	reply := response.Choices[0].Content
	r.logger.Debug("received reply", "model", r.model, "reply_length", len(reply))
	return reply, nil
}

// classify maps a backend error onto langchaingo's standard error codes and
// marks the codes a retry cannot fix with ai.ErrNonRetryable. The original
// error stays reachable through errors.Is and errors.As.
func (r *Responder) classify(err error) error {
	mapped := r.mapper.Map(err)

	var stdErr *llms.Error
	if !errors.As(mapped, &stdErr) {
		return mapped
	}
	switch stdErr.Code {
	case llms.ErrCodeAuthentication,
		llms.ErrCodeInvalidRequest,
		llms.ErrCodeResourceNotFound,
		llms.ErrCodeQuotaExceeded,
		llms.ErrCodeContentFilter,
		llms.ErrCodeTokenLimit,
		llms.ErrCodeNotImplemented:
		return fmt.Errorf("%w: %w", ai.ErrNonRetryable, mapped)
	}
	return mapped
}

// errorMapper picks langchaingo's provider-specific error patterns.
func errorMapper(backend ai.Backend) *llms.ErrorMapper {
	switch backend {
	case ai.BackendOpenAI:
		return llms.OpenAIErrorMapper()
	case ai.BackendAnthropic:
		return llms.AnthropicErrorMapper()
	default:
		return llms.NewErrorMapper(string(backend))
	}
}

// effectiveMaxTokens is the reply limit sent with each request. Anthropic's
// messages API rejects requests without one.
func effectiveMaxTokens(config *ai.Config) int {
	if config.MaxTokens == 0 && config.Backend == ai.BackendAnthropic {
		return defaultAnthropicMaxTokens
	}
	return config.MaxTokens
}
