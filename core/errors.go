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


package core

import "errors"

// Pipeline errors. Every failure surfaced by the search pipeline wraps one
// of these so callers can classify it with errors.Is.
var (
	// ErrUsage indicates the command was invoked with missing or malformed arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrEmptyInput indicates the body to search is empty after trimming.
	ErrEmptyInput = errors.New("no input provided")

	// ErrEmptyQuery indicates the query is empty after trimming.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrUpstream indicates the language model call itself failed.
	ErrUpstream = errors.New("model request failed")

	// ErrDecode indicates the model reply could not be decoded into SearchResults.
	ErrDecode = errors.New("failed to decode model response")

	// ErrInvalidResults indicates decoded results violate a domain rule.
	ErrInvalidResults = errors.New("invalid search results")
)
