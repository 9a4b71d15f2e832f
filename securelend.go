package securelend

import (
	"context"

	"github.com/SecureLend/sdk/core/transport"
	"github.com/SecureLend/sdk/resources/banking"
	"github.com/SecureLend/sdk/resources/creditcards"
	"github.com/SecureLend/sdk/resources/loans"
)

// Version of the SDK, sent in the User-Agent header.
const Version = transport.Version

// SecureLend is the SDK client. It is safe for concurrent use.
type SecureLend struct {
	// Loans compares business loans and calculates payments.
	Loans *loans.Resource
	// Banking compares business bank accounts.
	Banking *banking.Resource
	// CreditCards compares business credit cards.
	CreditCards *creditcards.Resource

	transport *transport.Client
}

// New returns a client for apiKey, which must look like sk_test_... or
// sk_live_... followed by at least 32 letters or digits. A malformed key is
// a validation_error; nothing is sent to the server.
func New(apiKey string, opts ...Option) (*SecureLend, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client, err := transport.New(apiKey, o.transport...)
	if err != nil {
		return nil, err
	}

	return &SecureLend{
		Loans:       loans.New(client, o.decode...),
		Banking:     banking.New(client, o.decode...),
		CreditCards: creditcards.New(client, o.decode...),
		transport:   client,
	}, nil
}

// Connect establishes the connection now instead of on the first call.
func (s *SecureLend) Connect(ctx context.Context) error {
	return s.transport.Connect(ctx)
}

// SetAPIKey switches to another key, e.g. per tenant. The next call
// reconnects with it. An invalid key is rejected and the current key kept.
func (s *SecureLend) SetAPIKey(apiKey string) error {
	return s.transport.SetAPIKey(apiKey)
}

// EnableDebug logs connects and tool calls with their arguments.
func (s *SecureLend) EnableDebug() {
	s.transport.EnableDebug()
}

// DisableDebug stops debug logging.
func (s *SecureLend) DisableDebug() {
	s.transport.DisableDebug()
}

// Transport returns the underlying transport, for calling tools the
// resources do not wrap.
func (s *SecureLend) Transport() *transport.Client {
	return s.transport
}
