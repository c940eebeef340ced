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
	"context"
	"errors"
	"log/slog"
	"time"
)

// MaxRetryDelay caps the backoff between two attempts.
const MaxRetryDelay = 30 * time.Second

// permanentError marks an error that must not be retried.
type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent wraps err so RetryWithBackoff returns it immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// RetryWithBackoff runs operation up to maxAttempts times, doubling the delay
// after each failed attempt starting from baseDelay, up to MaxRetryDelay.
// attempt is 1-based.
//
// It stops early when operation succeeds, returns an error wrapped with
// Permanent, or the context is done. Otherwise the error from the last
// attempt is returned, unwrapped from any Permanent marker.
func RetryWithBackoff(ctx context.Context, maxAttempts int, baseDelay time.Duration, operation func(ctx context.Context, attempt int) error) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}
	if baseDelay < 0 {
		return ErrInvalidRetryDelay
	}

	delay := min(baseDelay, MaxRetryDelay)
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation(ctx, attempt)
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("model request succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		var permanent *permanentError
		if errors.As(lastErr, &permanent) {
			return permanent.err
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}
		if attempt == maxAttempts {
			break
		}

		slog.Debug("model request failed, retrying", "attempt", attempt, "maxAttempts", maxAttempts, "delay", delay, "err", lastErr)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = nextDelay(delay)
	}

	return lastErr
}

// nextDelay doubles delay without exceeding MaxRetryDelay.
func nextDelay(delay time.Duration) time.Duration {
	if delay >= MaxRetryDelay/2 {
		return MaxRetryDelay
	}
	return delay * 2
}
