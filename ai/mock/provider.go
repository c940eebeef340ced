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


package mock

import "github.com/poiesic/semsearch/ai"

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	responder *MockResponder
	closed    bool
}

// NewMockProvider creates a new mock provider with a default mock responder.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockResponder() to access the concrete type for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		responder: NewMockResponder(),
	}
}

// NewMockProviderWithResponder creates a mock provider around a custom responder.
func NewMockProviderWithResponder(responder *MockResponder) *MockProvider {
	return &MockProvider{
		responder: responder,
	}
}

// Responder returns the mock responder.
func (p *MockProvider) Responder() ai.Responder {
	return p.responder
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockResponder returns the underlying mock responder for test assertions.
func (p *MockProvider) GetMockResponder() *MockResponder {
	return p.responder
}
