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


package ai

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Backend names a concrete model service implementation.
type Backend string

const (
	// BackendOpenAI talks to any OpenAI-compatible chat completions API
	// (OpenAI, Ollama's /v1 endpoint, LocalAI, vLLM).
	BackendOpenAI Backend = "openai"
	// BackendOllama talks to Ollama's native API.
	BackendOllama Backend = "ollama"
	// BackendAnthropic talks to the Anthropic messages API.
	BackendAnthropic Backend = "anthropic"
)

// Backends lists every supported backend.
var Backends = []Backend{BackendOpenAI, BackendOllama, BackendAnthropic}

// noToken is sent to local services that don't require authentication.
const noToken = "none"

// Config holds configuration for model providers.
type Config struct {
	// Backend selects the provider implementation.
	// Default: "openai"
	Backend Backend

	// Host is the base URL of the model service.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server.
	// May be empty for the anthropic backend, which then uses the library default.
	Host string

	// Model is the model identifier.
	// Example: "qwen2.5:3b", "gpt-4o-mini", "claude-3-5-haiku-latest"
	Model string

	// Token is the API credential. "none" is used for local services.
	Token string

	// Temperature is the sampling temperature, between 0 and 2.
	// Default: 0.0
	Temperature float64

	// MaxTokens caps the reply length. 0 leaves it to the backend.
	MaxTokens int

	// JSONMode asks the backend to constrain output to JSON when supported.
	// Default: true
	JSONMode bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBackend sets the backend.
func WithBackend(backend Backend) ConfigOption {
	return func(c *Config) {
		c.Backend = backend
	}
}

// WithHost sets the service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithToken sets the API token.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

// WithMaxTokens sets the reply length cap.
func WithMaxTokens(maxTokens int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = maxTokens
	}
}

// WithJSONMode enables or disables backend JSON mode.
func WithJSONMode(enabled bool) ConfigOption {
	return func(c *Config) {
		c.JSONMode = enabled
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible service.
func DefaultConfig() *Config {
	return &Config{
		Backend:     BackendOpenAI,
		Host:        "http://localhost:11434/v1",
		Model:       "qwen2.5:3b",
		Token:       noToken,
		Temperature: 0.0,
		MaxTokens:   0,
		JSONMode:    true,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithBackend(BackendOllama),
//	    WithHost("http://localhost:11434"),
//	    WithModel("llama3.2"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the configuration in canonical form.
// OpenAI-compatible hosts need the /v1 suffix, while Ollama's native client
// appends its own /api paths and must not have it.
func (c *Config) Normalize() {
	c.Backend = Backend(strings.ToLower(strings.TrimSpace(string(c.Backend))))
	c.Host = strings.TrimSpace(c.Host)
	if c.Host == "" {
		return
	}

	c.Host = strings.TrimSuffix(c.Host, "/")
	switch c.Backend {
	case BackendOpenAI:
		if !strings.HasSuffix(c.Host, "/v1") {
			c.Host = c.Host + "/v1"
		}
	case BackendOllama:
		c.Host = strings.TrimSuffix(c.Host, "/v1")
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if !IsKnownBackend(c.Backend) {
		return fmt.Errorf("ai config: unknown backend %q", c.Backend)
	}
	if c.Host == "" && c.Backend != BackendAnthropic {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Backend == BackendAnthropic && (c.Token == "" || c.Token == noToken) {
		return errors.New("ai config: Token is required for the anthropic backend")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("ai config: Temperature must be between 0 and 2")
	}
	if c.MaxTokens < 0 {
		return errors.New("ai config: MaxTokens cannot be negative")
	}
	return nil
}

// IsKnownBackend reports whether b is one of Backends.
func IsKnownBackend(b Backend) bool {
	return slices.Contains(Backends, b)
}
