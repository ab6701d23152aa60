package metrics

import (
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fallback",
		Name:      "resolutions_total",
		Help:      "Count of category resolutions by final status and source.",
	}, []string{"category", "status", "source"})
	resolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "fallback",
		Name:      "resolution_duration_seconds",
		Help:      "Duration of a category resolution across all providers.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"category", "status"})
	providerFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fallback",
		Name:      "provider_failures_total",
		Help:      "Count of provider attempts that advanced the chain.",
	}, []string{"category", "provider"})
)

// Resolver tracks metrics for the fallback resolution chain.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// ObserveResolve records the final outcome of one resolution.
func (m Resolver) ObserveResolve(category model.Category, status model.CategoryStatus, source string, started time.Time) {
	if source == "" {
		source = "none"
	}
	resolveTotal.WithLabelValues(string(category), string(status), source).Inc()
	resolveDuration.WithLabelValues(string(category), string(status)).Observe(time.Since(started).Seconds())
}

// ObserveProviderFailure records a provider attempt that did not satisfy the request.
func (m Resolver) ObserveProviderFailure(category model.Category, provider string) {
	providerFailuresTotal.WithLabelValues(string(category), provider).Inc()
}
