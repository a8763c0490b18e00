package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFeedFetchMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFeedFetchMetrics(reg)

	m.RecordSuccess(50 * time.Millisecond)
	m.RecordSuccess(70 * time.Millisecond)
	m.RecordFailure(time.Second)

	expected := strings.NewReader(`
# HELP feedhub_feed_fetch_total Outbound feed fetches by result.
# TYPE feedhub_feed_fetch_total counter
feedhub_feed_fetch_total{result="failure"} 1
feedhub_feed_fetch_total{result="success"} 2
`)
	if err := testutil.GatherAndCompare(reg, expected, "feedhub_feed_fetch_total"); err != nil {
		t.Errorf("unexpected counter state: %v", err)
	}
}
