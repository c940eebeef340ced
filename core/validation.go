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

import "fmt"

// ValidateSearchResults checks decoded results against domain rules.
//
// Validation rules:
//   - every match has non-empty Text
//   - RelevanceScore is within [0.0, 1.0]
//   - 0 <= StartIndex <= EndIndex
//   - TotalMatches equals len(Matches)
//
// NOT validated:
//   - indices against the body length (they are approximate)
//   - QueryProcessed (free text, may be empty)
func ValidateSearchResults(results *SearchResults) error {
	if results == nil {
		return fmt.Errorf("%w: results are nil", ErrInvalidResults)
	}

	for i := range results.Matches {
		if err := ValidateSearchMatch(&results.Matches[i]); err != nil {
			return fmt.Errorf("match %d: %w", i, err)
		}
	}

	if results.TotalMatches != len(results.Matches) {
		return fmt.Errorf("%w: totalMatches is %d but %d matches were returned",
			ErrInvalidResults, results.TotalMatches, len(results.Matches))
	}

	return nil
}

// ValidateSearchMatch checks a single match.
func ValidateSearchMatch(match *SearchMatch) error {
	if match == nil {
		return fmt.Errorf("%w: match is nil", ErrInvalidResults)
	}

	if match.Text == "" {
		return fmt.Errorf("%w: text cannot be empty", ErrInvalidResults)
	}

	if !IsValidRelevanceScore(match.RelevanceScore) {
		return fmt.Errorf("%w: relevanceScore %v is outside [0, 1]", ErrInvalidResults, match.RelevanceScore)
	}

	if match.StartIndex < 0 || match.StartIndex > match.EndIndex {
		return fmt.Errorf("%w: invalid index range [%d, %d]", ErrInvalidResults, match.StartIndex, match.EndIndex)
	}

	return nil
}

// IsValidRelevanceScore reports whether score is within [0.0, 1.0].
func IsValidRelevanceScore(score float64) bool {
	return score >= 0.0 && score <= 1.0
}
