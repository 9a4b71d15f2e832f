package securelend

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/core/transport"
	"github.com/SecureLend/sdk/providers/observability"
)

// Option configures a SecureLend client.
type Option func(*options)

type options struct {
	transport []transport.Option
	decode    []envelope.Option
}

// WithMCPURL overrides the service URL (default
// https://mcp.securelend.ai/sse). Tool calls go to the same URL with "/sse"
// replaced by "/call_tool".
func WithMCPURL(url string) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithBaseURL(url))
	}
}

// WithHTTPClient sets the HTTP client used for tool calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithHTTPClient(client))
	}
}

// WithTimeout replaces the 30 second limit applied to calls whose context
// has no deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithTimeout(timeout))
	}
}

// WithUserAgent replaces the securelend-go/<version> User-Agent.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithUserAgent(userAgent))
	}
}

// WithLogger sets the logger for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithLogger(logger))
	}
}

// WithObserver attaches an observability provider, e.g. slogobs.New() or
// promobs.New().
func WithObserver(observer observability.Provider) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithObserver(observer))
	}
}

// WithMiddleware installs call middlewares, the first one outermost. See
// package core/transport/middleware.
func WithMiddleware(middlewares ...transport.Middleware) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithMiddleware(middlewares...))
	}
}

// WithDebug starts the client with debug tracing on.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithDebug(enabled))
	}
}

// WithRepairJSON makes payload decoding retry near-JSON (trailing commas,
// single quotes, unquoted keys) through a JSON repair pass before failing.
func WithRepairJSON() Option {
	return func(o *options) {
		o.decode = append(o.decode, envelope.WithRepair())
	}
}
