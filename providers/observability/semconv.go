package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across the transport, the middleware and the observers.

// --- Tool Call Attributes ---

const (
	// AttrToolName is the name of the remote tool being invoked
	AttrToolName = "tool.name"

	// AttrToolArguments is the serialized argument object
	AttrToolArguments = "tool.arguments"

	// AttrToolRequestID is the requestId returned in the tool result
	AttrToolRequestID = "tool.request_id"

	// AttrToolWidget reports whether the result carried an HTML widget
	AttrToolWidget = "tool.widget"

	// AttrErrorKind is the apierror kind of a failed call
	AttrErrorKind = "error.kind"
)

// --- Transport Attributes ---

const (
	// AttrTransportURL is the configured base service URL
	AttrTransportURL = "transport.url"

	// AttrTransportEndpoint is the derived tool-call endpoint
	AttrTransportEndpoint = "transport.endpoint"

	// AttrTransportKeyMode is "test" or "live", never the key itself
	AttrTransportKeyMode = "transport.key_mode"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"

	// AttrHTTPRequestDuration is the wall-clock time of the round trip
	AttrHTTPRequestDuration = "http.request.duration"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanToolCall is the span name for a tool call through the transport
	SpanToolCall = "securelend.tool_call"
)

// --- Event Names ---

const (
	// EventHTTPRequestPrepared marks a serialized request about to be sent
	EventHTTPRequestPrepared = "http.request.prepared"

	// EventHTTPRequestError marks a request that failed before a response
	EventHTTPRequestError = "http.request.error"

	// EventHTTPResponseReceived marks a response read in full
	EventHTTPResponseReceived = "http.response.received"

	// EventTransportConnect marks a new session being established
	EventTransportConnect = "transport.connect"
)

// --- Metric Names ---

const (
	// MetricTransportConnections counts sessions established by the transport
	MetricTransportConnections = "securelend.transport.connections"

	// MetricToolCallCount counts tool calls by tool and status
	MetricToolCallCount = "securelend.tool_call.count"

	// MetricToolCallDuration is the histogram of tool call durations in seconds
	MetricToolCallDuration = "securelend.tool_call.duration"

	// MetricRateLimitWait is the histogram of client-side limiter waits in seconds
	MetricRateLimitWait = "securelend.rate_limit.wait"
)
