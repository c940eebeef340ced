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

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// RequestID is a content-derived identifier for a single search request.
// It is only used to correlate log lines.
type RequestID uint64

// RequestIDFromInput derives a deterministic RequestID from the query and body
// using BLAKE2b. Identical inputs always produce the same id.
func RequestIDFromInput(query, body string) RequestID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(query))
	h.Write([]byte{0})
	h.Write([]byte(body))
	sum := h.Sum(nil)
	return RequestID(binary.LittleEndian.Uint64(sum))
}

// SearchMatch is one excerpt of the body the model judged relevant to the query.
type SearchMatch struct {
	Text           string  `json:"text"`
	RelevanceScore float64 `json:"relevanceScore"` // 0.0-1.0, 1.0 = perfect match
	StartIndex     int     `json:"startIndex"`     // approximate character offset
	EndIndex       int     `json:"endIndex"`       // approximate character offset
	Reasoning      string  `json:"reasoning"`
}

// SearchResults is the full decoded reply for one query.
type SearchResults struct {
	Matches        []SearchMatch `json:"matches"` // model output order
	TotalMatches   int           `json:"totalMatches"`
	QueryProcessed string        `json:"queryProcessed"`
}
