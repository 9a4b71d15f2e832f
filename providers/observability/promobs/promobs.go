package promobs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/SecureLend/sdk/providers/observability"
)

// Option configures an Observer.
type Option func(*Observer)

// WithRegisterer sets where collectors are registered. Default:
// prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Observer) {
		o.registerer = reg
	}
}

// WithBase sets the provider receiving spans and log calls.
func WithBase(base observability.Provider) Option {
	return func(o *Observer) {
		o.base = base
	}
}

// WithBuckets overrides the histogram buckets. Default:
// prometheus.DefBuckets, which suits call durations in seconds.
func WithBuckets(buckets []float64) Option {
	return func(o *Observer) {
		o.buckets = buckets
	}
}

// Observer is a Prometheus-backed observability.Provider.
type Observer struct {
	base       observability.Provider
	registerer prometheus.Registerer
	buckets    []float64

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

var _ observability.Provider = (*Observer)(nil)

// New returns an Observer.
func New(opts ...Option) *Observer {
	o := &Observer{
		base:       observability.Nop(),
		registerer: prometheus.DefaultRegisterer,
		buckets:    prometheus.DefBuckets,
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	return o.base.StartSpan(ctx, name, attrs...)
}

func (o *Observer) Trace(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.base.Trace(ctx, msg, attrs...)
}

func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.base.Debug(ctx, msg, attrs...)
}

func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.base.Info(ctx, msg, attrs...)
}

func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.base.Warn(ctx, msg, attrs...)
}

func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.base.Error(ctx, msg, attrs...)
}

// Counter returns the named counter. Its label names are fixed by the
// attributes of the first Add; later samples with a different label set
// are dropped and reported to the base provider at WARN.
func (o *Observer) Counter(name string) observability.Counter {
	return &counter{observer: o, name: name}
}

// Histogram returns the named histogram, with the same label rule as Counter.
func (o *Observer) Histogram(name string) observability.Histogram {
	return &histogram{observer: o, name: name}
}

type counter struct {
	observer *Observer
	name     string
}

func (c *counter) Add(ctx context.Context, value int64, attrs ...observability.Attribute) {
	if value < 0 {
		c.observer.dropped(ctx, c.name, fmt.Errorf("counter cannot decrease: %d", value))
		return
	}
	labels := toLabels(attrs)
	vec, err := c.observer.counterVec(c.name, labels)
	if err == nil {
		var metric prometheus.Counter
		if metric, err = vec.GetMetricWith(labels); err == nil {
			metric.Add(float64(value))
			return
		}
	}
	c.observer.dropped(ctx, c.name, err)
}

type histogram struct {
	observer *Observer
	name     string
}

func (h *histogram) Record(ctx context.Context, value float64, attrs ...observability.Attribute) {
	labels := toLabels(attrs)
	vec, err := h.observer.histogramVec(h.name, labels)
	if err == nil {
		var metric prometheus.Observer
		if metric, err = vec.GetMetricWith(labels); err == nil {
			metric.Observe(value)
			return
		}
	}
	h.observer.dropped(ctx, h.name, err)
}

func (o *Observer) dropped(ctx context.Context, name string, err error) {
	o.base.Warn(ctx, "metric sample dropped",
		observability.String("metric", name),
		observability.Error(err),
	)
}

func (o *Observer) counterVec(name string, labels prometheus.Labels) (*prometheus.CounterVec, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if vec, ok := o.counters[name]; ok {
		return vec, nil
	}

	metricName := MetricName(name)
	if !strings.HasSuffix(metricName, "_total") {
		metricName += "_total"
	}
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: metricName,
		Help: "SecureLend SDK counter " + name,
	}, labelNames(labels))

	if err := o.registerer.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("register %s: %w", metricName, err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register %s: existing collector is %T", metricName, already.ExistingCollector)
		}
		vec = existing
	}

	o.counters[name] = vec
	return vec, nil
}

func (o *Observer) histogramVec(name string, labels prometheus.Labels) (*prometheus.HistogramVec, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if vec, ok := o.histograms[name]; ok {
		return vec, nil
	}

	metricName := MetricName(name)
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    metricName,
		Help:    "SecureLend SDK histogram " + name,
		Buckets: o.buckets,
	}, labelNames(labels))

	if err := o.registerer.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("register %s: %w", metricName, err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, fmt.Errorf("register %s: existing collector is %T", metricName, already.ExistingCollector)
		}
		vec = existing
	}

	o.histograms[name] = vec
	return vec, nil
}

// MetricName turns a dotted observability name into a Prometheus one.
func MetricName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && i > 0:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func toLabels(attrs []observability.Attribute) prometheus.Labels {
	labels := make(prometheus.Labels, len(attrs))
	for _, attr := range attrs {
		labels[MetricName(attr.Key)] = fmt.Sprint(attr.Value)
	}
	return labels
}

func labelNames(labels prometheus.Labels) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
