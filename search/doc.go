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


// Package search turns a query and a body of text into structured matches by
// delegating the actual matching to a language model.
//
// The Searcher runs a fixed pipeline for every call:
//   - build a deterministic instruction string and user prompt
//   - send them to an ai.Responder (optionally retrying with backoff)
//   - extract the outermost {...} span from the free-form reply
//   - decode it into core.SearchResults, optionally validating domain rules
//
// Nothing is ranked or matched locally. Failures are classified with the
// core sentinels: core.ErrEmptyQuery and core.ErrEmptyInput before any model
// call, core.ErrUpstream when the model call fails, and core.ErrDecode (via
// *DecodeError) when the reply cannot be turned into results.
package search
