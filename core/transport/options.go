package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SecureLend/sdk/providers/observability"
)

// DefaultTimeout bounds a tool call when the caller's context has no deadline.
const DefaultTimeout = 30 * time.Second

// Option configures a Client at construction.
type Option func(*config)

type config struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	userAgent   string
	logger      *slog.Logger
	observer    observability.Provider
	middlewares []Middleware
	debug       bool
}

// WithBaseURL overrides DefaultBaseURL. The call endpoint is derived from it
// with CallEndpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for every call. Its own Timeout,
// if any, applies in addition to the per-call deadline.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithTimeout replaces DefaultTimeout. A value <= 0 disables the default
// deadline; the caller's context is then the only bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithUserAgent replaces the securelend-go/<version> User-Agent.
func WithUserAgent(userAgent string) Option {
	return func(c *config) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug tracing. Nothing is logged
// unless debug is enabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithObserver attaches an observability provider. The client counts
// established sessions on it and prepends NewObservabilityMiddleware to the
// call chain, making it the outermost wrapper.
func WithObserver(observer observability.Provider) Option {
	return func(c *config) {
		c.observer = observer
	}
}

// WithMiddleware appends call middlewares. The first one given is the
// outermost.
//
//	transport.New(key,
//	    transport.WithMiddleware(
//	        middleware.NewLoggingMiddleware(logger, middleware.LogLevelStandard),
//	        middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: 2}),
//	    ),
//	)
func WithMiddleware(middlewares ...Middleware) Option {
	return func(c *config) {
		c.middlewares = append(c.middlewares, middlewares...)
	}
}

// WithDebug starts the client with debug tracing on.
func WithDebug(enabled bool) Option {
	return func(c *config) {
		c.debug = enabled
	}
}
