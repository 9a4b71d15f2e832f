// Package apierror defines the closed error taxonomy returned by every public
// SecureLend operation.
//
// All failures are [*Error] values discriminated by [Kind]. Each kind carries
// its own typed payload (for example [Error.RetryAfter] for rate limits and
// [Error.Fields] for validation failures). Use [errors.Is] against the
// package sentinels ([ErrValidation], [ErrServer], ...) or [KindOf] to branch
// on the kind.
package apierror
