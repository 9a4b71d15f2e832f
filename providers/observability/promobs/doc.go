// Package promobs exports SDK metrics to Prometheus.
//
// [Observer] implements observability.Provider. Counters and histograms
// become CounterVec and HistogramVec collectors registered on a
// prometheus.Registerer; attribute keys become label names. Spans and log
// calls are forwarded to a base provider, by default the no-op one, so
// promobs can be combined with slogobs:
//
//	observer := promobs.New(
//	    promobs.WithRegisterer(registry),
//	    promobs.WithBase(slogobs.New()),
//	)
//	client, err := securelend.New(apiKey, securelend.WithObserver(observer))
//
// Metric names are sanitised for Prometheus: "securelend.tool_call.count"
// is exported as securelend_tool_call_count_total.
package promobs
