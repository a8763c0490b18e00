// Package metrics exposes prometheus collectors for the feed fetch pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FeedFetchMetrics tracks outbound feed fetch outcomes and latency.
type FeedFetchMetrics struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
}

func NewFeedFetchMetrics(reg prometheus.Registerer) *FeedFetchMetrics {
	factory := promauto.With(reg)

	return &FeedFetchMetrics{
		fetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "feedhub_feed_fetch_total",
			Help: "Outbound feed fetches by result.",
		}, []string{"result"}),
		fetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "feedhub_feed_fetch_duration_seconds",
			Help:    "Duration of outbound feed fetch and parse.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *FeedFetchMetrics) RecordSuccess(duration time.Duration) {
	m.fetchTotal.WithLabelValues("success").Inc()
	m.fetchDuration.Observe(duration.Seconds())
}

func (m *FeedFetchMetrics) RecordFailure(duration time.Duration) {
	m.fetchTotal.WithLabelValues("failure").Inc()
	m.fetchDuration.Observe(duration.Seconds())
}
