// Package task wraps the connectors with the orchestration-layer policy:
// bounded retries with a fixed inter-attempt delay under a hard wall-clock
// timeout, plus the file-writing step for produced frames.
package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RetryPolicy bounds one top-level task invocation. The values mirror the
// platform defaults but stay configurable per call rather than baked in.
type RetryPolicy struct {
	// Retries is the number of additional attempts after the first failure.
	Retries int

	// Delay is the fixed pause between attempts.
	Delay time.Duration

	// Timeout bounds the whole call, all attempts included.
	Timeout time.Duration
}

// DefaultRetryPolicy returns the platform defaults: 3 retries, 10 s apart,
// under a one-hour timeout.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Retries: 3,
		Delay:   10 * time.Second,
		Timeout: time.Hour,
	}
}

func (p RetryPolicy) orDefault() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.Retries == 0 && p.Delay == 0 && p.Timeout == 0 {
		return def
	}
	if p.Timeout == 0 {
		p.Timeout = def.Timeout
	}
	return p
}

// taskLogger derives a per-invocation logger carrying the task name and a
// fresh run ID.
func taskLogger(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().
		Str("task", name).
		Str("run_id", uuid.NewString()).
		Logger()
}

// run executes fn under the retry policy. The last attempt's error is
// surfaced to the caller unchanged after retries are exhausted.
func run[T any](ctx context.Context, policy RetryPolicy, logger zerolog.Logger, fn func(context.Context) (T, error)) (T, error) {
	policy = policy.orDefault()

	ctx, cancel := context.WithTimeout(ctx, policy.Timeout)
	defer cancel()

	var zero T
	var lastErr error
	for attempt := 0; attempt <= policy.Retries; attempt++ {
		if attempt > 0 {
			logger.Warn().
				Int("attempt", attempt+1).
				Err(lastErr).
				Msg("retrying after failure")
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(policy.Delay):
			}
		}

		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return zero, lastErr
}
