// Package middleware provides opt-in [transport.Middleware] implementations
// for tool calls: per-call timeouts, retries with backoff, structured
// logging and client-side rate limiting.
//
// None of them is installed by default. Compose them with
// transport.WithMiddleware (or securelend.WithMiddleware); the first one
// given is the outermost:
//
//	client, err := securelend.New(apiKey,
//	    securelend.WithMiddleware(
//	        middleware.NewLoggingMiddleware(logger, middleware.LogLevelStandard),
//	        middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: 2}),
//	        middleware.NewRateLimitMiddleware(middleware.RateLimitConfig{RPS: 5, Burst: 10}),
//	        middleware.NewTimeoutMiddleware(10*time.Second),
//	    ),
//	)
//
// With this order each retry attempt waits for the limiter and gets its own
// timeout.
package middleware
