package room

import (
	"context"
	"log/slog"
	"time"

	"github.com/lumyn/showdown/internal/metrics"
)

// Janitor evicts idle rooms on a ticker so abandoned matches do not leak
// memory.
type Janitor struct {
	store    Store
	ttl      time.Duration
	interval time.Duration
	metrics  *metrics.Metrics
}

func NewJanitor(store Store, ttl, interval time.Duration, m *metrics.Metrics) *Janitor {
	return &Janitor{
		store:    store,
		ttl:      ttl,
		interval: interval,
		metrics:  m,
	}
}

// Run sweeps until the context is canceled.
func (j *Janitor) Run(ctx context.Context) {
	slog.Info("Room janitor started.", "ttl", j.ttl, "interval", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Room janitor stopped.")
			return
		case now := <-ticker.C:
			j.sweep(now)
		}
	}
}

func (j *Janitor) sweep(now time.Time) {
	removed := j.store.Sweep(j.ttl, now)
	if removed > 0 {
		slog.Info("Evicted idle rooms.", "count", removed)
		j.metrics.RoomsEvicted(removed)
	}
	j.metrics.SetRoomsActive(j.store.Len())
}
