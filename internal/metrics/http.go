package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of served HTTP requests.",
	}, []string{"route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of served HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	httpRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Count of requests rejected by the visitor rate limiter.",
	})
)

// HTTP tracks metrics for the JSON API.
type HTTP struct{}

func NewHTTP() *HTTP {
	return &HTTP{}
}

func (m HTTP) ObserveRequest(route string, code int, started time.Time) {
	if route == "" {
		route = "unknown"
	}
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
}

func (m HTTP) ObserveRateLimited() {
	httpRateLimitedTotal.Inc()
}
