// Package guard admits at most one submission per address within a fixed interval.
package guard

import (
	"sync"
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/clock"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"go.uber.org/zap"
)

// DefaultInterval is the minimum time between two submissions from one address.
const DefaultInterval = 300 * time.Second

// Guard remembers the last admitted submission time of every address.
type Guard struct {
	mu       sync.Mutex
	clock    clock.Clock
	interval time.Duration
	last     map[string]int64
	logger   *zap.Logger
}

func New(clk clock.Clock, interval time.Duration, logger *zap.Logger) *Guard {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Guard{
		clock:    clk,
		interval: interval,
		last:     make(map[string]int64),
		logger:   logger.Named("guard"),
	}
}

// Execute admits a submission from address, or fails with *model.RateLimitedError
// carrying the remaining wait when the previous one is too recent.
func (g *Guard) Execute(address string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := clock.UnixSeconds(g.clock)
	if last, ok := g.last[address]; ok {
		elapsed := time.Duration(now-last) * time.Second
		if elapsed < g.interval {
			remaining := g.interval - elapsed
			g.logger.Info("submission rejected",
				zap.String("address", address),
				zap.Duration("remaining", remaining),
			)
			return &model.RateLimitedError{Remaining: remaining}
		}
	}
	g.last[address] = now
	return nil
}
