// Package slogobs provides an observability.Provider backed by log/slog.
//
// [New] builds an [Observer] that routes spans, in-memory metrics and log
// events through a structured logger. [NewHandler] exposes the underlying
// slog.Handler (compact or JSON lines) on its own; the transport uses it as
// the default sink for debug tracing. Format and level default to the
// SECURELEND_LOG_FORMAT and SECURELEND_LOG_LEVEL environment variables.
package slogobs
