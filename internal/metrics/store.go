// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "utxoledger"

var (
	storeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Count of embedded key-value store operations.",
	}, []string{"store", "backend", "operation", "status"})
	storeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of embedded key-value store operations.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"store", "backend", "operation", "status"})
)

// Store tracks operations against one embedded store (blocks, utxos or wallets).
type Store struct {
	store   string
	backend string
}

// NewStore constructs a collector for the store named store running on backend.
func NewStore(store, backend string) *Store {
	if store == "" {
		store = "unknown"
	}
	if backend == "" {
		backend = "unknown"
	}
	return &Store{store: store, backend: backend}
}

// Observe records a single store operation outcome and duration.
func (m Store) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	storeOperationsTotal.WithLabelValues(m.store, m.backend, operation, status).Inc()
	storeOperationDuration.WithLabelValues(m.store, m.backend, operation, status).Observe(time.Since(started).Seconds())
}
