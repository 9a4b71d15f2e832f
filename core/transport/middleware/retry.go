package middleware

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/core/transport"
)

// RetryConfig tunes the retry middleware. Zero values are replaced with the
// defaults noted on each field.
type RetryConfig struct {
	// MaxRetries is the number of attempts after the first failure.
	// Default: 3.
	MaxRetries int

	// InitialBackoff is the wait before the first retry. Default: 1s.
	InitialBackoff time.Duration

	// MaxBackoff caps the computed backoff. Default: 30s.
	MaxBackoff time.Duration

	// BackoffFactor is the exponential growth per attempt. Default: 2.0.
	BackoffFactor float64

	// JitterFraction adds up to JitterFraction*backoff of random noise.
	// Default: 0.1.
	JitterFraction float64

	// RetryableFunc decides whether an error is worth another attempt.
	// Default: apierror.IsTransient (rate limit, server and network errors).
	RetryableFunc func(error) bool
}

func applyRetryDefaults(config *RetryConfig) {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = time.Second
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = 30 * time.Second
	}
	if config.BackoffFactor == 0 {
		config.BackoffFactor = 2.0
	}
	if config.JitterFraction == 0 {
		config.JitterFraction = 0.1
	}
	if config.RetryableFunc == nil {
		config.RetryableFunc = apierror.IsTransient
	}
}

// computeBackoff returns the wait before retry number attempt (0-indexed):
// min(InitialBackoff * BackoffFactor^attempt, MaxBackoff) plus jitter.
func computeBackoff(config RetryConfig, attempt int) time.Duration {
	base := float64(config.InitialBackoff) * math.Pow(config.BackoffFactor, float64(attempt))
	if base > float64(config.MaxBackoff) {
		base = float64(config.MaxBackoff)
	}

	jitter := base * config.JitterFraction * rand.Float64() //nolint:gosec // non-cryptographic jitter is intentional
	return time.Duration(base + jitter)
}

// nextWait prefers the server's Retry-After hint over the computed backoff,
// still capped by MaxBackoff.
func nextWait(config RetryConfig, attempt int, err error) time.Duration {
	if hint, ok := apierror.RetryAfter(err); ok {
		return min(hint, config.MaxBackoff)
	}
	return computeBackoff(config, attempt)
}

// NewRetryMiddleware retries failed calls per config. Validation and
// authentication errors are never retried by the default policy.
//
// On exhaustion the returned *apierror.Error keeps the kind and payload of
// the last call error, and its cause chain holds both [ErrRetryExhausted]
// and that error.
func NewRetryMiddleware(config RetryConfig) transport.Middleware {
	applyRetryDefaults(&config)

	return func(next transport.CallFunc) transport.CallFunc {
		return func(ctx context.Context, name string, args any) (*envelope.Envelope, error) {
			var lastErr error

			for attempt := 0; attempt <= config.MaxRetries; attempt++ {
				if attempt > 0 {
					wait := nextWait(config, attempt-1, lastErr)
					select {
					case <-ctx.Done():
						return nil, apierror.Network("retry aborted: "+ctx.Err().Error(), fmt.Errorf("%w (last error: %v)", ctx.Err(), lastErr))
					case <-time.After(wait):
					}
				}

				env, err := next(ctx, name, args)
				if err == nil {
					return env, nil
				}

				lastErr = err

				if !config.RetryableFunc(err) {
					return nil, err
				}
			}

			return nil, exhaustedError(config.MaxRetries, lastErr)
		}
	}
}

func exhaustedError(retries int, lastErr error) *apierror.Error {
	cause := fmt.Errorf("%w after %d retries: %w", ErrRetryExhausted, retries, lastErr)
	if last, ok := apierror.As(lastErr); ok {
		return last.WithCause(cause)
	}
	return apierror.Network(cause.Error(), cause)
}
