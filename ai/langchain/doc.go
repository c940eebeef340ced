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


// Package langchain provides ai.Provider implementations backed by langchaingo.
//
// Three backends are supported, selected by ai.Config.Backend:
//
//   - openai: any OpenAI-compatible chat completions API (OpenAI, Ollama /v1,
//     LocalAI, vLLM)
//   - ollama: Ollama's native API
//   - anthropic: the Anthropic messages API
//
// Each backend is wrapped by the same Responder, which sends the instructions
// as a system message and the prompt as a user message and returns the first
// choice's text unchanged.
//
// # Usage
//
//	cfg := ai.DefaultConfig() // OpenAI-compatible server on localhost:11434
//	provider, err := langchain.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	reply, err := provider.Responder().Respond(ctx, instructions, prompt)
package langchain
