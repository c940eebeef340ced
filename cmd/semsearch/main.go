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


package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/semsearch"
	"github.com/poiesic/semsearch/ai"
	"github.com/poiesic/semsearch/ai/langchain"
	"github.com/poiesic/semsearch/console"
	"github.com/poiesic/semsearch/core"
	"github.com/poiesic/semsearch/search"
	"github.com/urfave/cli/v2"
)

// providerFactory builds the model provider from the parsed AI config.
type providerFactory func(cfg *ai.Config) (ai.Provider, error)

// runner carries the process streams so tests can substitute them.
type runner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	newProvider providerFactory

	// emitted is set once the search action has written its JSON line.
	emitted bool
}

func main() {
	r := &runner{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		newProvider: langchain.NewProvider,
	}

	r.run(os.Args)
}

// run executes the app. Every failure, including flag parsing, is reported
// as JSON on stdout; the exit status is always zero. --help prints the usage
// text to stderr and a usage error line to stdout.
func (r *runner) run(args []string) {
	r.emitted = false
	if err := r.newApp().Run(args); err != nil {
		console.WriteError(r.stdout, err)
		return
	}
	if !r.emitted {
		console.WriteError(r.stdout, fmt.Errorf("%w: %s", core.ErrUsage, console.UsageLine))
	}
}

func (r *runner) newApp() *cli.App {
	defaults := ai.DefaultConfig()

	return &cli.App{
		Name:            "semsearch",
		Usage:           "Semantic search over text using a language model",
		UsageText:       console.UsageLine,
		ArgsUsage:       `"<query>" [body]`,
		HideHelpCommand: true,
		Reader:          r.stdin,
		Writer:          r.stderr,
		ErrWriter:       r.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Model backend (openai, ollama, anthropic)",
				Value: string(defaults.Backend),
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Model service host URL",
				Value: defaults.Host,
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Model name",
				Value: defaults.Model,
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "API token for the model service",
				Value:   defaults.Token,
				EnvVars: []string{"SEMSEARCH_TOKEN"},
			},
			&cli.Float64Flag{
				Name:  "temperature",
				Usage: "Sampling temperature",
				Value: defaults.Temperature,
			},
			&cli.IntFlag{
				Name:  "max-tokens",
				Usage: "Maximum reply tokens (0 = backend default)",
				Value: defaults.MaxTokens,
			},
			&cli.BoolFlag{
				Name:  "json-mode",
				Usage: "Ask the backend to constrain output to JSON",
				Value: defaults.JSONMode,
			},
			&cli.IntFlag{
				Name:  "max-attempts",
				Usage: "Maximum model requests before reporting a failure",
				Value: search.DefaultMaxAttempts,
			},
			&cli.DurationFlag{
				Name:  "retry-delay",
				Usage: "Base delay for exponential backoff",
				Value: search.DefaultRetryDelay,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Abort the model request after this long (0 = no timeout)",
			},
			&cli.BoolFlag{
				Name:  "lenient",
				Usage: "Accept replies with out-of-range scores, bad index ranges or inconsistent totals",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "Log every pipeline stage, including the raw model reply, to stderr",
			},
		},
		Before: r.setupLogger,
		Action: r.searchCommand,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", core.ErrUsage, err)
		},
	}
}

// searchCommand always emits exactly one JSON line and returns nil; errors are
// part of the output contract, not the exit status.
func (r *runner) searchCommand(c *cli.Context) error {
	results, err := r.search(c)
	console.Emit(r.stdout, results, err)
	r.emitted = true
	return nil
}

func (r *runner) search(c *cli.Context) (*core.SearchResults, error) {
	query, body, err := console.Collect(c.Args().Slice(), r.stdin)
	if err != nil {
		return nil, err
	}

	aiConfig := ai.NewConfig(
		ai.WithBackend(ai.Backend(c.String("backend"))),
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithToken(c.String("token")),
		ai.WithTemperature(c.Float64("temperature")),
		ai.WithMaxTokens(c.Int("max-tokens")),
		ai.WithJSONMode(c.Bool("json-mode")),
	)

	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := r.newProvider(aiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create model provider: %w", err)
	}

	client, err := semsearch.New(
		semsearch.WithProvider(provider),
		semsearch.WithAsyncPoolSize(1),
		semsearch.WithSearchOptions(
			search.WithMaxAttempts(c.Int("max-attempts")),
			search.WithRetryDelay(c.Duration("retry-delay")),
			search.WithStrictValidation(!c.Bool("lenient")),
		),
	)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ctx := context.Background()
	if timeout := c.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var monitor search.SearchMonitor
	if c.Bool("trace") {
		monitor = search.NewLoggingMonitor(slog.Default())
	}

	slog.Debug("running search",
		"backend", aiConfig.Backend,
		"host", aiConfig.Host,
		"model", aiConfig.Model,
		"body_length", len(body))

	return client.SearchWithMonitor(ctx, query, body, monitor)
}

func (r *runner) setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("%w: invalid log level %q: must be one of debug, info, warn, error", core.ErrUsage, levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
