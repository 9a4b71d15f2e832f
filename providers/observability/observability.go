package observability

import (
	"context"
	"time"
)

// Provider receives everything the SDK reports about its tool calls: one
// span per call, the session, call and limiter metrics named in semconv.go,
// and log lines for call outcomes. slogobs and promobs implement it; Nop
// discards everything.
type Provider interface {
	Tracer
	Metrics
	Logger
}

// Tracer opens the span wrapping a tool call. The transport adds
// EventTransportConnect and the HTTP request events to it.
type Tracer interface {
	// StartSpan opens a span named after the operation, SpanToolCall for
	// tool calls, with the tool name among attrs.
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is one tool call as seen by the client, from the middleware chain
// down to the HTTP round trip. Implementations must accept AddEvent from
// the transport while the middleware still holds the span.
type Span interface {
	End()
	SetAttributes(attrs ...Attribute)
	// SetStatus marks the call StatusOK or StatusError; the error kind is
	// set separately as the AttrErrorKind attribute.
	SetStatus(code StatusCode, description string)
	RecordError(err error)
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode is the outcome of a span.
type StatusCode int

const (
	// StatusUnset means the call has not finished.
	StatusUnset StatusCode = iota
	// StatusOK means the tool returned a result envelope.
	StatusOK
	// StatusError means the call failed with an *apierror.Error.
	StatusError
)

// Metrics hands out the instruments named by the Metric* constants.
// Repeated calls with one name must return instruments sharing state.
type Metrics interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// Counter counts sessions established and tool calls by status. Values
// are never negative.
type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

// Histogram records call durations and limiter waits, in seconds.
type Histogram interface {
	Record(ctx context.Context, value float64, attrs ...Attribute)
}

// Logger receives per-call log lines. The transport's debug tracing goes
// to its own *slog.Logger, not here.
type Logger interface {
	Trace(ctx context.Context, msg string, attrs ...Attribute)
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// Attribute is a key from semconv.go with its value. The API key is never
// attached; tool arguments only in truncated form.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute, e.g. the tool name or error kind.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute, e.g. whether a widget came back.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute for call and HTTP timings.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error records err's message under AttrError; nil yields an empty value.
func Error(err error) Attribute {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return Attribute{Key: AttrError, Value: message}
}
