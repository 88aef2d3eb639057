package infrastructure

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the Prometheus collectors for the analytics service.
// Collectors are registered on the default registry, which the /metrics
// endpoint exposes.
type Metrics struct {
	RefreshTotal    *prometheus.CounterVec
	RefreshDuration prometheus.Histogram
	SnapshotDeals   prometheus.Gauge
	SnapshotWOs     prometheus.Gauge
	BoardFetchTotal *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics returns the service collectors, registering them on first
// call. The default registry forbids duplicate registration, so the
// collectors are process-wide singletons.
func NewMetrics() *Metrics {
	metricsOnce.Do(registerMetrics)
	return metrics
}

func registerMetrics() {
	metrics = &Metrics{
		RefreshTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skylark",
			Name:      "snapshot_refresh_total",
			Help:      "Snapshot refresh attempts by outcome.",
		}, []string{"outcome"}),
		RefreshDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "skylark",
			Name:      "snapshot_refresh_duration_seconds",
			Help:      "Wall time of a full snapshot refresh.",
			Buckets:   prometheus.DefBuckets,
		}),
		SnapshotDeals: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "skylark",
			Name:      "snapshot_deals",
			Help:      "Deal records in the current snapshot.",
		}),
		SnapshotWOs: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "skylark",
			Name:      "snapshot_work_orders",
			Help:      "Work order records in the current snapshot.",
		}),
		BoardFetchTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skylark",
			Name:      "board_fetch_total",
			Help:      "Board fetches against the monday.com API by board and outcome.",
		}, []string{"board", "outcome"}),
	}
}
