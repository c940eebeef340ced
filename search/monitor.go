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
	"log/slog"

	"github.com/poiesic/semsearch/core"
)

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to inspect prompts, raw replies and outcomes.
type SearchMonitor interface {
	Start(query string)
	AfterPromptBuilt(instructions, prompt string)
	AfterResponse(attempt int, reply string, err error)
	AfterExtraction(extracted string)
	Finish(results *core.SearchResults, err error)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) AfterPromptBuilt(_, _ string)          {}
func (n *noopMonitor) AfterResponse(_ int, _ string, _ error) {}
func (n *noopMonitor) AfterExtraction(_ string)              {}
func (n *noopMonitor) Finish(_ *core.SearchResults, _ error) {}

// LoggingMonitor reports every pipeline stage to a structured logger at info level.
type LoggingMonitor struct {
	logger *slog.Logger
}

var _ SearchMonitor = (*LoggingMonitor)(nil)

// NewLoggingMonitor creates a monitor that logs to logger, or slog.Default() when nil.
func NewLoggingMonitor(logger *slog.Logger) *LoggingMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingMonitor{logger: logger.With("component", "search-trace")}
}

func (m *LoggingMonitor) Start(query string) {
	m.logger.Info("search started", "query", query)
}

func (m *LoggingMonitor) AfterPromptBuilt(instructions, prompt string) {
	m.logger.Info("prompt built", "instructions_length", len(instructions), "prompt_length", len(prompt))
}

func (m *LoggingMonitor) AfterResponse(attempt int, reply string, err error) {
	if err != nil {
		m.logger.Info("model request failed", "attempt", attempt, "err", err)
		return
	}
	m.logger.Info("model replied", "attempt", attempt, "reply", reply)
}

func (m *LoggingMonitor) AfterExtraction(extracted string) {
	m.logger.Info("json extracted", "length", len(extracted))
}

func (m *LoggingMonitor) Finish(results *core.SearchResults, err error) {
	if err != nil {
		m.logger.Info("search failed", "err", err)
		return
	}
	m.logger.Info("search finished", "matches", len(results.Matches), "totalMatches", results.TotalMatches)
}
