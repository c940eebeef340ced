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


package console

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/poiesic/semsearch/core"
)

// FallbackErrorJSON is written when an error envelope itself cannot be encoded.
const FallbackErrorJSON = `{"error": "Failed to process request"}`

// errUnknown stands in for a nil error passed to WriteError.
var errUnknown = errors.New("unknown error")

// ErrorEnvelope is the single output shape for every failure.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// Emit writes results, or err when it is non-nil, as one line of JSON.
func Emit(w io.Writer, results *core.SearchResults, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteResults(w, results)
}

// WriteResults writes results as one line of JSON. An empty match list is
// written as [] rather than null. If encoding fails an error envelope is
// written instead.
func WriteResults(w io.Writer, results *core.SearchResults) {
	if results == nil {
		WriteError(w, core.ErrDecode)
		return
	}

	out := *results
	if out.Matches == nil {
		out.Matches = []core.SearchMatch{}
	}

	line, err := encodeLine(out)
	if err != nil {
		WriteError(w, err)
		return
	}
	_, _ = w.Write(line)
}

// WriteError writes {"error": err.Error()} as one line of JSON, falling back
// to FallbackErrorJSON if encoding fails.
func WriteError(w io.Writer, err error) {
	if err == nil {
		err = errUnknown
	}

	line, encErr := encodeLine(ErrorEnvelope{Error: err.Error()})
	if encErr != nil {
		_, _ = io.WriteString(w, FallbackErrorJSON+"\n")
		return
	}
	_, _ = w.Write(line)
}

// encodeLine renders v as newline-terminated JSON without HTML escaping.
func encodeLine(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
