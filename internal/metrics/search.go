package metrics

import (
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "dispatches_total",
		Help:      "Count of search dispatches by query type and status.",
	}, []string{"type", "status"})
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "dispatch_duration_seconds",
		Help:      "Duration of search dispatches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"type"})
)

// Search tracks metrics for the query dispatcher.
type Search struct{}

func NewSearch() *Search {
	return &Search{}
}

// ObserveDispatch records a dispatched query.
func (m Search) ObserveDispatch(queryType model.QueryType, status model.QueryStatus, started time.Time) {
	searchTotal.WithLabelValues(string(queryType), string(status)).Inc()
	searchDuration.WithLabelValues(string(queryType)).Observe(time.Since(started).Seconds())
}
