package metrics

import (
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger node RPC operations.",
	}, []string{"operation", "network", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// LedgerClient tracks metrics for RPC calls to the ledger node.
type LedgerClient struct {
	network model.Network
}

// NewLedgerClient constructs a metrics collector for ledger RPC calls.
func NewLedgerClient(network model.Network) *LedgerClient {
	return &LedgerClient{network: networkLabel(network)}
}

// Observe records a single RPC call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	ledgerRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	ledgerRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
