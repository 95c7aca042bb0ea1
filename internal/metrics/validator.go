package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validatorRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "runs_total",
		Help:      "Count of full chain verifications.",
	}, []string{"status"})
	validatorBlocks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "blocks_checked",
		Help:      "Blocks checked by the most recent chain verification.",
	})
	validatorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "duration_seconds",
		Help:      "Duration of full chain verifications.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Validator tracks chain verification runs.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ObserveVerification records a verification that checked blocks blocks.
func (Validator) ObserveVerification(err error, blocks int, started time.Time) {
	status := "valid"
	if err != nil {
		status = "invalid"
	}
	validatorRunsTotal.WithLabelValues(status).Inc()
	validatorBlocks.Set(float64(blocks))
	validatorDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
