package metrics

import (
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "cycles_total",
		Help:      "Count of completed telemetry poll cycles.",
	}, []string{"network", "status"})

	pollCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of a telemetry poll cycle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	pollSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "skipped_total",
		Help:      "Count of ticks skipped because the previous cycle was still running.",
	}, []string{"network"})

	pollWindowSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "window_blocks",
		Help:      "Number of blocks in the last fetched window.",
	}, []string{"network"})
)

// Poller tracks metrics for the telemetry poll loop.
type Poller struct {
	network model.Network
}

// NewPoller constructs a Poller with defaults.
func NewPoller(network model.Network) *Poller {
	return &Poller{network: networkLabel(network)}
}

// ObserveCycle records the outcome of a poll cycle. A degraded cycle is
// reported with status "degraded".
func (m Poller) ObserveCycle(degraded bool, started time.Time) {
	status := "success"
	if degraded {
		status = "degraded"
	}
	pollCycleTotal.WithLabelValues(string(m.network), status).Inc()
	pollCycleDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveSkipped records a tick that found a cycle still in flight.
func (m Poller) ObserveSkipped() {
	pollSkippedTotal.WithLabelValues(string(m.network)).Inc()
}

// ObserveWindow records the size of the fetched block window.
func (m Poller) ObserveWindow(blocks int) {
	pollWindowSize.WithLabelValues(string(m.network)).Set(float64(blocks))
}
