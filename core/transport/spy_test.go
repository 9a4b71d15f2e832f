package transport

import (
	"context"
	"sync"

	"github.com/SecureLend/sdk/providers/observability"
)

// spyObserver records counters, histograms and spans for assertions.
type spyObserver struct {
	mu       sync.Mutex
	counters map[string]int64
	labels   map[string][]observability.Attribute
	records  map[string]int
	spans    []*spySpan
	errors   []string
}

func newSpyObserver() *spyObserver {
	return &spyObserver{
		counters: map[string]int64{},
		labels:   map[string][]observability.Attribute{},
		records:  map[string]int{},
	}
}

func (o *spyObserver) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	o.mu.Lock()
	defer o.mu.Unlock()
	span := &spySpan{name: name, attrs: attrs}
	o.spans = append(o.spans, span)
	return ctx, span
}

func (o *spyObserver) Counter(name string) observability.Counter {
	return spyCounter{observer: o, name: name}
}

func (o *spyObserver) Histogram(name string) observability.Histogram {
	return spyHistogram{observer: o, name: name}
}

func (o *spyObserver) Trace(context.Context, string, ...observability.Attribute) {}
func (o *spyObserver) Debug(context.Context, string, ...observability.Attribute) {}
func (o *spyObserver) Info(context.Context, string, ...observability.Attribute)  {}
func (o *spyObserver) Warn(context.Context, string, ...observability.Attribute)  {}

func (o *spyObserver) Error(_ context.Context, msg string, _ ...observability.Attribute) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errors = append(o.errors, msg)
}

func (o *spyObserver) counter(name string) int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.counters[name]
}

func (o *spyObserver) lastLabels(name string) []observability.Attribute {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.labels[name]
}

type spyCounter struct {
	observer *spyObserver
	name     string
}

func (c spyCounter) Add(_ context.Context, value int64, attrs ...observability.Attribute) {
	c.observer.mu.Lock()
	defer c.observer.mu.Unlock()
	c.observer.counters[c.name] += value
	c.observer.labels[c.name] = attrs
}

type spyHistogram struct {
	observer *spyObserver
	name     string
}

func (h spyHistogram) Record(context.Context, float64, ...observability.Attribute) {
	h.observer.mu.Lock()
	defer h.observer.mu.Unlock()
	h.observer.records[h.name]++
}

type spySpan struct {
	mu     sync.Mutex
	name   string
	attrs  []observability.Attribute
	events []string
	status observability.StatusCode
	err    error
	ended  bool
}

func (s *spySpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
}

func (s *spySpan) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

func (s *spySpan) SetStatus(code observability.StatusCode, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = code
}

func (s *spySpan) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *spySpan) AddEvent(name string, _ ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, name)
}

func (s *spySpan) attr(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

var _ observability.Provider = (*spyObserver)(nil)
