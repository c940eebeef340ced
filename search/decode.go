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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/poiesic/semsearch/core"
)

// DecodeError reports a model reply that could not be turned into results.
// It keeps the raw reply so prompt or format drift can be diagnosed.
type DecodeError struct {
	// Raw is the trimmed model reply.
	Raw string
	// Err is the underlying parse or validation error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v. Raw response: %s", e.Err, e.Raw)
}

// Unwrap exposes both core.ErrDecode and the underlying cause to errors.Is.
func (e *DecodeError) Unwrap() []error {
	return []error{core.ErrDecode, e.Err}
}

// object holds one JSON object keyed by its exact member names. Lookups are
// case-sensitive, unlike struct decoding with encoding/json.
type object map[string]json.RawMessage

// Decode extracts the JSON object from a model reply and parses it into
// SearchResults. Unknown fields are ignored. Missing or null required fields,
// keys in the wrong case and type mismatches fail with *DecodeError. No domain
// validation happens here; see core.ValidateSearchResults.
func Decode(reply string) (*core.SearchResults, error) {
	raw := strings.TrimSpace(reply)

	var obj object
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &obj); err != nil {
		return nil, &DecodeError{Raw: raw, Err: err}
	}

	results, err := obj.toResults()
	if err != nil {
		return nil, &DecodeError{Raw: raw, Err: err}
	}
	return results, nil
}

func (o object) toResults() (*core.SearchResults, error) {
	var (
		items          []json.RawMessage
		totalMatches   int
		queryProcessed string
	)
	if err := o.field("matches", &items); err != nil {
		return nil, err
	}
	if err := o.field("totalMatches", &totalMatches); err != nil {
		return nil, err
	}
	if err := o.field("queryProcessed", &queryProcessed); err != nil {
		return nil, err
	}

	matches := make([]core.SearchMatch, 0, len(items))
	for i, item := range items {
		match, err := decodeMatch(item)
		if err != nil {
			return nil, fmt.Errorf("matches[%d]: %w", i, err)
		}
		matches = append(matches, match)
	}

	return &core.SearchResults{
		Matches:        matches,
		TotalMatches:   totalMatches,
		QueryProcessed: queryProcessed,
	}, nil
}

func decodeMatch(data json.RawMessage) (core.SearchMatch, error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return core.SearchMatch{}, err
	}
	if obj == nil {
		return core.SearchMatch{}, errors.New("match is null")
	}

	var m core.SearchMatch
	for _, f := range []struct {
		name string
		dst  any
	}{
		{"text", &m.Text},
		{"relevanceScore", &m.RelevanceScore},
		{"startIndex", &m.StartIndex},
		{"endIndex", &m.EndIndex},
		{"reasoning", &m.Reasoning},
	} {
		if err := obj.field(f.name, f.dst); err != nil {
			return core.SearchMatch{}, err
		}
	}
	return m, nil
}

// field decodes the member called name into dst. An absent or null member is
// reported as missing.
func (o object) field(name string, dst any) error {
	data, ok := o[name]
	if !ok || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("missing required field %q", name)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}
