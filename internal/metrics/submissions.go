package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submissions",
		Name:      "total",
		Help:      "Count of transfer submissions by outcome.",
	}, []string{"status"})
	submissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "submissions",
		Name:      "duration_seconds",
		Help:      "Duration of transfer submissions, mining included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Submissions tracks transfer submissions.
type Submissions struct{}

func NewSubmissions() *Submissions {
	return &Submissions{}
}

// ObserveSubmission records the outcome of a single transfer.
func (Submissions) ObserveSubmission(err error, started time.Time) {
	status := SubmissionStatus(err)
	submissionsTotal.WithLabelValues(status).Inc()
	submissionDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// SubmissionStatus maps a submission error to its metric label.
func SubmissionStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, model.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, model.ErrUnknownWallet):
		return "unknown_wallet"
	case errors.Is(err, model.ErrInvalidAddress), errors.Is(err, model.ErrInvalidAmount):
		return "invalid"
	case errors.Is(err, model.ErrDoubleSpend), errors.Is(err, model.ErrUnbalanced):
		return "rejected"
	default:
		return "error"
	}
}
