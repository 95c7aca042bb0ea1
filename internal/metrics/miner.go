package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerBlocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "blocks_total",
		Help:      "Count of mined blocks.",
	})
	minerDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "duration_seconds",
		Help:      "Time spent searching for a valid nonce.",
		Buckets:   prometheus.ExponentialBuckets(.01, 2, 12), // 10ms..20s
	})
	minerAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "attempts",
		Help:      "Number of header hashes computed per mined block.",
		Buckets:   prometheus.ExponentialBuckets(1024, 2, 12),
	})
)

// Miner tracks proof-of-work searches.
type Miner struct{}

func NewMiner() *Miner {
	return &Miner{}
}

// ObserveMined records one mined block.
func (Miner) ObserveMined(attempts int64, started time.Time) {
	minerBlocksTotal.Inc()
	minerDuration.Observe(time.Since(started).Seconds())
	minerAttempts.Observe(float64(attempts))
}
