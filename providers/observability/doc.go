// Package observability defines the interfaces and semantic conventions used
// for tracing, metrics and structured logging throughout the SDK.
//
// The central entry point is [Provider], which composes [Tracer], [Metrics],
// and [Logger] into a single injectable dependency. The transport records
// its connection counter on the configured Provider, and the observability
// middleware opens one [Span] per tool call and propagates it through the
// context with [ContextWithSpan] so the HTTP helper can add events to it.
//
// semconv.go holds the attribute keys, span, event and metric names.
package observability
