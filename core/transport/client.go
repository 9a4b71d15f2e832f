package transport

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tidwall/gjson"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/internal/utils"
	"github.com/SecureLend/sdk/providers/observability"
	"github.com/SecureLend/sdk/providers/observability/slogobs"
)

// Client is the authenticated connection to the tool server. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
	observer   observability.Provider
	debug      atomic.Bool

	// call is the middleware chain ending in send.
	call CallFunc

	mu      sync.Mutex
	apiKey  string
	session *session
}

// session is the state established by Connect. It is immutable once built;
// SetAPIKey replaces it rather than modifying it.
type session struct {
	apiKey   string
	endpoint string
	header   http.Header
}

// toolCall is the request body of the call endpoint.
type toolCall struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}

// New validates apiKey and returns an unconnected Client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if err := ValidateAPIKey(apiKey); err != nil {
		return nil, err
	}

	cfg := config{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slogobs.NewHandler(&slogobs.HandlerOptions{
			Format: slogobs.FormatCompact,
			Level:  slog.LevelDebug,
		}))
	}

	middlewares := cfg.middlewares
	observer := cfg.observer
	if observer != nil {
		middlewares = append([]Middleware{NewObservabilityMiddleware(observer)}, middlewares...)
	} else {
		observer = observability.Nop()
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: cfg.httpClient,
		timeout:    cfg.timeout,
		userAgent:  cfg.userAgent,
		logger:     cfg.logger,
		observer:   observer,
		apiKey:     apiKey,
	}
	c.debug.Store(cfg.debug)
	c.call = buildChain(c.send, middlewares)

	return c, nil
}

// Connect establishes the session if there is none. It is idempotent and
// performs no network I/O: the server authenticates each call.
func (c *Client) Connect(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return apierror.Network("MCP connection failed: "+err.Error(), err)
	}
	c.ensureSession(ctx)
	return nil
}

// Connected reports whether a session is currently established.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// CallTool invokes the named tool through the middleware chain and returns
// its raw result envelope. The session is established on demand.
func (c *Client) CallTool(ctx context.Context, name string, args any) (*envelope.Envelope, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return c.call(ctx, name, args)
}

// SetAPIKey validates key, then replaces the key and discards the session
// in one step. The next call reconnects with the new credentials; calls
// already in flight finish on the session they started with. An invalid key
// leaves the client unchanged.
func (c *Client) SetAPIKey(key string) error {
	if err := ValidateAPIKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
	c.session = nil
	return nil
}

// EnableDebug turns on tracing of connects and tool calls.
func (c *Client) EnableDebug() {
	c.debug.Store(true)
}

// DisableDebug turns tracing off.
func (c *Client) DisableDebug() {
	c.debug.Store(false)
}

// Debug reports whether tracing is on.
func (c *Client) Debug() bool {
	return c.debug.Load()
}

// BaseURL returns the configured service URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Observer returns the attached observer, or a no-op provider.
func (c *Client) Observer() observability.Provider {
	return c.observer
}

// ensureSession returns the current session, building one under the lock
// when there is none.
func (c *Client) ensureSession(ctx context.Context) *session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return c.session
	}

	if c.debug.Load() {
		c.logger.DebugContext(ctx, "[SecureLend SDK] Connecting to MCP server", slog.String("url", c.baseURL))
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.apiKey)
	header.Set("User-Agent", c.userAgent)
	header.Set("Content-Type", "application/json")

	c.session = &session{
		apiKey:   c.apiKey,
		endpoint: CallEndpoint(c.baseURL),
		header:   header,
	}

	mode := observability.String(observability.AttrTransportKeyMode, keyMode(c.apiKey))
	c.observer.Counter(observability.MetricTransportConnections).Add(ctx, 1, mode)
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventTransportConnect,
			observability.String(observability.AttrTransportEndpoint, c.session.endpoint),
			mode,
		)
	}

	return c.session
}

// send is the innermost CallFunc: one HTTP round trip.
func (c *Client) send(ctx context.Context, name string, args any) (*envelope.Envelope, error) {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	sess := c.ensureSession(ctx)

	if args == nil {
		args = map[string]any{}
	}

	if c.debug.Load() {
		c.logger.DebugContext(ctx, "[SecureLend SDK] Calling tool",
			slog.String("tool", name),
			slog.String("arguments", utils.Truncate(utils.ToString(args))),
		)
	}

	res, err := utils.PostJSON(ctx, c.httpClient, sess.endpoint, sess.header, toolCall{Name: name, Arguments: args})
	if err != nil {
		return nil, transportError(err)
	}

	if !res.IsSuccess() {
		return nil, statusError(res, time.Now())
	}

	if !gjson.ValidBytes(res.Body) {
		return nil, apierror.Server("Invalid response from MCP server: body is not JSON", res.StatusCode, utils.Truncate(string(res.Body)))
	}

	if c.debug.Load() {
		c.logger.DebugContext(ctx, "[SecureLend SDK] Tool response",
			slog.String("tool", name),
			slog.Int("status", res.StatusCode),
			slog.Int("bytes", len(res.Body)),
		)
	}

	return envelope.New(res.Body), nil
}
