package middleware

import (
	"context"
	"sync"

	"github.com/SecureLend/sdk/core/envelope"
)

// callSequence is a transport.CallFunc returning a scripted sequence of
// results. Past the end of errs it succeeds.
type callSequence struct {
	mu    sync.Mutex
	errs  []error
	calls int
	names []string
}

func (s *callSequence) next(_ context.Context, name string, _ any) (*envelope.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.calls
	s.calls++
	s.names = append(s.names, name)

	if index < len(s.errs) && s.errs[index] != nil {
		return nil, s.errs[index]
	}
	return envelope.FromItems(envelope.Text(`{"ok":true}`)), nil
}

func (s *callSequence) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
