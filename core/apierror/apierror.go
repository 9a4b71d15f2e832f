package apierror

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind discriminates the closed set of failures surfaced by the SDK.
// The string values are stable and safe to compare or log.
type Kind string

const (
	KindAuthentication Kind = "authentication_error"
	KindRateLimit      Kind = "rate_limit_error"
	KindValidation     Kind = "validation_error"
	KindNotFound       Kind = "not_found"
	KindNetwork        Kind = "network_error"
	KindServer         Kind = "server_error"
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	return string(k)
}

// Sentinels for use with errors.Is. Every *Error matches the sentinel of its kind.
//
// Example:
//
//	if errors.Is(err, apierror.ErrRateLimit) {
//	    wait, _ := apierror.RetryAfter(err)
//	    time.Sleep(wait)
//	}
var (
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrRateLimit      = &Error{Kind: KindRateLimit}
	ErrValidation     = &Error{Kind: KindValidation}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrNetwork        = &Error{Kind: KindNetwork}
	ErrServer         = &Error{Kind: KindServer}
)

// FieldError names the request field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single error type returned by public SDK operations.
// Only the payload fields matching Kind are populated:
//
//   - KindRateLimit: RetryAfter (zero when the server sent no hint)
//   - KindValidation: Fields
//   - KindAuthentication, KindServer: StatusCode, and Body for server errors
//   - KindNetwork: the cause, reachable through Unwrap
type Error struct {
	Kind    Kind
	Message string

	StatusCode int
	Body       string
	RetryAfter time.Duration
	Fields     []FieldError

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return "securelend: " + string(e.Kind)
	}
	return fmt.Sprintf("securelend: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause returns a copy of e whose Unwrap yields cause.
func (e *Error) WithCause(cause error) *Error {
	clone := *e
	clone.Fields = append([]FieldError(nil), e.Fields...)
	clone.cause = cause
	return &clone
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Authentication builds an authentication_error.
func Authentication(message string, statusCode int) *Error {
	return &Error{Kind: KindAuthentication, Message: message, StatusCode: statusCode}
}

// RateLimit builds a rate_limit_error. retryAfter is a backoff hint for the
// caller; the SDK never retries on its own.
func RateLimit(message string, retryAfter time.Duration) *Error {
	return &Error{Kind: KindRateLimit, Message: message, StatusCode: 429, RetryAfter: retryAfter}
}

// Validation builds a validation_error. Fields is optional.
func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// InvalidField is shorthand for a validation_error on a single field.
func InvalidField(field, message string) *Error {
	return Validation(message, FieldError{Field: field, Message: message})
}

// NotFound builds a not_found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, StatusCode: 404}
}

// Network builds a network_error wrapping cause.
func Network(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, cause: cause}
}

// Server builds a server_error. statusCode is 0 when the service answered
// successfully but the payload was malformed.
func Server(message string, statusCode int, body string) *Error {
	return &Error{Kind: KindServer, Message: message, StatusCode: statusCode, Body: body}
}

// Malformed builds a server_error for a response the SDK could not interpret.
func Malformed(message string, cause error) *Error {
	return &Error{Kind: KindServer, Message: message, cause: cause}
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or "" when err is not an SDK error.
func KindOf(err error) Kind {
	if apiErr, ok := As(err); ok {
		return apiErr.Kind
	}
	return ""
}

// RetryAfter returns the server's backoff hint carried by a rate_limit_error.
func RetryAfter(err error) (time.Duration, bool) {
	apiErr, ok := As(err)
	if !ok || apiErr.Kind != KindRateLimit || apiErr.RetryAfter <= 0 {
		return 0, false
	}
	return apiErr.RetryAfter, true
}

// IsTransient reports whether err is worth retrying by a caller-side policy:
// rate limits, server errors and network errors.
func IsTransient(err error) bool {
	switch KindOf(err) {
	case KindRateLimit, KindServer, KindNetwork:
		return true
	default:
		return false
	}
}

// FieldNames lists the failing fields of a validation error, comma separated.
func (e *Error) FieldNames() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return strings.Join(names, ", ")
}
