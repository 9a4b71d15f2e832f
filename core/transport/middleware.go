package transport

import (
	"context"

	"github.com/SecureLend/sdk/core/envelope"
)

// CallFunc invokes one named tool and returns the raw result envelope. It is
// the unit threaded through the middleware chain.
type CallFunc func(ctx context.Context, name string, args any) (*envelope.Envelope, error)

// Middleware intercepts tool calls. Each Middleware receives the next CallFunc
// and returns a CallFunc that wraps it. Middlewares are applied
// outermost-first: the first middleware in the slice runs first on an
// outgoing call.
type Middleware func(next CallFunc) CallFunc

// buildChain wraps base with middlewares so that middlewares[0] is outermost.
func buildChain(base CallFunc, middlewares []Middleware) CallFunc {
	chain := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		chain = middlewares[i](chain)
	}
	return chain
}
