package rpc

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/goran-ethernal/ChainCache/pkg/config"
)

const backoffJitter = 0.25

// retryableError reports whether an error is transient: network failures, timeouts,
// rate limiting and gateway errors. Range errors are not retried here; the log cache
// splits the range instead.
func retryableError(err error) bool {
	switch classifyError(err) {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeRateLimit, ErrTypeServer:
		return true
	default:
		return false
	}
}

// calculateBackoff computes the wait before the given attempt, with +-25% jitter.
// The first attempt never waits.
func calculateBackoff(attempt int, cfg *config.RetryConfig) time.Duration {
	if attempt <= 1 {
		return 0
	}

	backoff := float64(cfg.InitialBackoff.Duration) * math.Pow(cfg.BackoffMultiplier, float64(attempt-2))
	backoff = min(backoff, float64(cfg.MaxBackoff.Duration))

	jitter := backoff * backoffJitter
	backoff += rand.Float64()*2*jitter - jitter //nolint:gosec

	return time.Duration(max(backoff, 0))
}

// retryWithBackoff runs fn until it succeeds, fails with a non-retryable error,
// runs out of attempts, or ctx is done. A nil config runs fn once.
func retryWithBackoff(ctx context.Context, cfg *config.RetryConfig, operation string, fn func() error) error {
	if cfg == nil {
		return fn()
	}

	started := time.Now()

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if wait := calculateBackoff(attempt, cfg); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("context cancelled during backoff (attempt %d/%d): %w", attempt, cfg.MaxAttempts, ctx.Err())
			}
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled before attempt %d: %w", attempt, err)
		}

		if attempt > 1 {
			retryInc(operation)
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !retryableError(lastErr) {
			return fmt.Errorf("non-retryable error on attempt %d/%d: %w", attempt, cfg.MaxAttempts, lastErr)
		}
	}

	return fmt.Errorf("all %d attempts failed after %v (last error: %w)", cfg.MaxAttempts, time.Since(started), lastErr)
}
