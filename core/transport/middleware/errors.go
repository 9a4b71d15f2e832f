package middleware

import "errors"

// ErrRetryExhausted is in the cause chain of the error returned when every
// retry attempt failed. The returned error itself is an *apierror.Error with
// the kind of the last failure, so errors.Is(err, ErrRetryExhausted) and
// apierror.KindOf(err) both work.
var ErrRetryExhausted = errors.New("securelend: all retry attempts exhausted")
