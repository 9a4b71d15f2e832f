package middleware

import (
	"context"
	"time"

	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/core/transport"
)

// NewTimeoutMiddleware bounds each call that passes through it. A shorter
// deadline already on the caller's context still wins.
//
// Placed inside the retry middleware it bounds every attempt; placed
// outside it bounds the whole sequence.
func NewTimeoutMiddleware(timeout time.Duration) transport.Middleware {
	return func(next transport.CallFunc) transport.CallFunc {
		return func(ctx context.Context, name string, args any) (*envelope.Envelope, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, name, args)
		}
	}
}
