package metrics

import (
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "source_client",
		Name:      "requests_total",
		Help:      "Count of external data source requests.",
	}, []string{"category", "status"})
	sourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "source_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of external data source requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"category", "status"})
)

// SourceClient tracks metrics for the external data source adapter.
type SourceClient struct{}

func NewSourceClient() *SourceClient {
	return &SourceClient{}
}

// Observe records a category fetch outcome and duration.
func (m SourceClient) Observe(category model.Category, err error, started time.Time) {
	status := statusLabel(err)
	sourceRequestsTotal.WithLabelValues(string(category), status).Inc()
	sourceRequestDuration.WithLabelValues(string(category), status).Observe(time.Since(started).Seconds())
}
