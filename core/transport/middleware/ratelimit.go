package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/core/transport"
	"github.com/SecureLend/sdk/providers/observability"
)

// RateLimitConfig configures the client-side token bucket.
type RateLimitConfig struct {
	// RPS is the sustained number of calls per second. Must be > 0.
	RPS float64

	// Burst is the bucket size. Default: 1.
	Burst int

	// PerTool gives every tool its own bucket instead of one shared bucket.
	PerTool bool

	// FailFast rejects a call that would have to wait with a
	// rate_limit_error carrying the wait as RetryAfter, instead of blocking.
	FailFast bool
}

// limiterSet hands out one rate.Limiter per key.
type limiterSet struct {
	limit rate.Limit
	burst int
	mu    sync.Mutex
	byKey map[string]*rate.Limiter
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.byKey[key]
	if !ok {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.byKey[key] = limiter
	}
	return limiter
}

// NewRateLimitMiddleware keeps the call rate under config.RPS before
// requests reach the server. By default calls wait for a token, bounded by
// their context; the wait is recorded on the observer in the context as
// the securelend.rate_limit.wait histogram.
//
// A non-positive RPS disables limiting and returns a pass-through middleware.
func NewRateLimitMiddleware(config RateLimitConfig) transport.Middleware {
	if config.RPS <= 0 {
		return func(next transport.CallFunc) transport.CallFunc { return next }
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}

	limiters := &limiterSet{
		limit: rate.Limit(config.RPS),
		burst: config.Burst,
		byKey: make(map[string]*rate.Limiter),
	}

	return func(next transport.CallFunc) transport.CallFunc {
		return func(ctx context.Context, name string, args any) (*envelope.Envelope, error) {
			key := ""
			if config.PerTool {
				key = name
			}
			limiter := limiters.get(key)

			if config.FailFast {
				reservation := limiter.Reserve()
				if delay := reservation.Delay(); delay > 0 {
					reservation.Cancel()
					return nil, apierror.RateLimit("Client-side rate limit exceeded.", delay.Round(time.Millisecond))
				}
				return next(ctx, name, args)
			}

			start := time.Now()
			if err := limiter.Wait(ctx); err != nil {
				return nil, apierror.Network("rate limiter: "+err.Error(), err)
			}
			if observer := observability.ObserverFromContext(ctx); observer != nil {
				observer.Histogram(observability.MetricRateLimitWait).Record(ctx, time.Since(start).Seconds(),
					observability.String(observability.AttrToolName, name),
				)
			}

			return next(ctx, name, args)
		}
	}
}
