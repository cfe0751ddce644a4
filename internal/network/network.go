// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package network contains the retry and pacing policy for the Management
// API calls that need it.
package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/trace"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	// defNumAttempts is the default number of retry attempts.
	defNumAttempts = 3
	// defRetryWait is the fixed delay after the API responds with HTTP 429.
	defRetryWait = 2 * time.Second
)

// ErrRetryFailed is returned if number of retry attempts exceeded the retry attempts limit and
// function wasn't able to complete without errors.
var ErrRetryFailed = errors.New("callback was unable to complete without errors within the allowed number of retries")

// StatusError is implemented by errors that carry the HTTP status code of the
// response that caused them.
type StatusError interface {
	error
	HTTPStatus() int
}

// IsStatus reports whether err carries the HTTP status code code.
func IsStatus(err error, code int) bool {
	var se StatusError
	if errors.As(err, &se) {
		return se.HTTPStatus() == code
	}
	return false
}

// WithRetry will run the callback function fn. If the function returns an
// error with HTTP status 429 (Too Many Requests), it will wait for the fixed
// duration wait, and then call it again up to maxAttempts times.  Every
// attempt waits on the limiter lim first.  Any other error is returned
// immediately.  If it runs out of attempts, it returns ErrRetryFailed
// wrapping the last error.
func WithRetry(ctx context.Context, lim *rate.Limiter, maxAttempts int, wait time.Duration, fn func() error) error {
	if maxAttempts <= 0 {
		maxAttempts = defNumAttempts
	}
	if wait <= 0 {
		wait = defRetryWait
	}
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(wait), uint64(maxAttempts-1)),
		ctx,
	)

	attempt := 0
	op := func() error {
		attempt++
		var err error
		trace.WithRegion(ctx, "WithRetry.wait", func() {
			err = lim.Wait(ctx)
		})
		if err != nil {
			return backoff.Permanent(err)
		}
		cbErr := fn()
		if cbErr == nil {
			return nil
		}
		tracelogf(ctx, "error", "WithRetry: %[1]s (%[1]T) after %[2]d attempts", cbErr, attempt)
		if !IsStatus(cbErr, http.StatusTooManyRequests) {
			return backoff.Permanent(fmt.Errorf("callback error: %w", cbErr))
		}
		return cbErr
	}
	notify := func(_ error, delay time.Duration) {
		tracelogf(ctx, "info", "got rate limited, sleeping %s", delay)
	}

	err := backoff.RetryNotify(op, bo, notify)
	if err != nil && IsStatus(err, http.StatusTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrRetryFailed, err)
	}
	return err
}

func tracelogf(ctx context.Context, category string, format string, a ...any) {
	trace.Logf(ctx, category, format, a...)
	slog.DebugContext(ctx, fmt.Sprintf(format, a...))
}
