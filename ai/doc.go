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


// Package ai provides the model abstraction used by semsearch.
//
// The search pipeline never talks to a model service directly. It depends on
// the Responder interface, which accepts an instruction string and a prompt
// string and returns the model's raw reply. Any backend (hosted API, local
// inference server, test double) can be substituted without touching the
// rest of the pipeline.
//
// # Interfaces
//
//   - Responder: one request, one textual reply
//   - Provider: owns a Responder and its lifecycle
//
// # Implementation Packages
//
//   - ai/langchain: production backends (OpenAI-compatible, Ollama, Anthropic)
//   - ai/mock: test doubles for unit testing without external dependencies
//
// As in the rest of the module, production constructors return interfaces
// (langchain.NewProvider returns ai.Provider) while mock constructors return
// concrete types so tests can inspect call counts and captured prompts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithBackend(ai.BackendOllama), ai.WithHost("http://localhost:11434"))
//	provider, err := langchain.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	reply, err := provider.Responder().Respond(ctx, instructions, prompt)
package ai
