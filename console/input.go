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
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/poiesic/semsearch/core"
)

// UsageLine describes the positional arguments.
const UsageLine = `semsearch [flags] "<query>" [body]  (body is read from stdin when omitted)`

// flagPattern matches an argument that reads like a command-line flag, such as
// -l, --lenient or --log-level=debug.
var flagPattern = regexp.MustCompile(`^--?[A-Za-z][A-Za-z0-9-]*(=\S*)?$`)

// Collect resolves the query and body from positional arguments.
//
// args[0] is the query. args[1], when present, is the body; otherwise stdin is
// read to EOF. The body is trimmed of surrounding whitespace. stdin is not
// touched when the body is given as an argument.
//
// Flags are only parsed before the query, so a flag-shaped argument after it
// is a usage error rather than a body, as is any third argument.
func Collect(args []string, stdin io.Reader) (query, body string, err error) {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return "", "", fmt.Errorf("%w: %s", core.ErrUsage, UsageLine)
	}
	for _, arg := range args[1:] {
		if flagPattern.MatchString(strings.TrimSpace(arg)) {
			return "", "", fmt.Errorf("%w: flag %q must come before the query: %s", core.ErrUsage, strings.TrimSpace(arg), UsageLine)
		}
	}
	if len(args) > 2 {
		return "", "", fmt.Errorf("%w: unexpected argument %q (quote the body to pass it as one argument): %s", core.ErrUsage, args[2], UsageLine)
	}
	query = args[0]

	if len(args) >= 2 {
		body = strings.TrimSpace(args[1])
		if body == "" {
			return "", "", core.ErrEmptyInput
		}
		return query, body, nil
	}

	if stdin == nil {
		return "", "", fmt.Errorf("%w via stdin", core.ErrEmptyInput)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read from stdin: %w", err)
	}

	body = strings.TrimSpace(string(data))
	if body == "" {
		return "", "", fmt.Errorf("%w via stdin", core.ErrEmptyInput)
	}
	return query, body, nil
}
