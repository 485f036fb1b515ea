package workers

import (
	"time"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/ratelimit"
)

// TrackerSweeper periodically evicts stale client records from the rate
// limiter's tracker. Without it the tracker grows by one record per distinct
// client IP for the lifetime of the process.
type TrackerSweeper struct {
	tracker  *ratelimit.Tracker
	interval time.Duration
	idleTTL  time.Duration

	stop chan struct{}

	logger *logger.Logger
}

func NewTrackerSweeper(tracker *ratelimit.Tracker, interval, idleTTL time.Duration, logger *logger.Logger) *TrackerSweeper {
	return &TrackerSweeper{
		tracker:  tracker,
		interval: interval,
		idleTTL:  idleTTL,
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (w *TrackerSweeper) Run() {
	if w.interval <= 0 {
		w.logger.Warn().Msg("tracker sweeper disabled: non-positive interval")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().
			Dur("interval", w.interval).
			Dur("idle_ttl", w.idleTTL).
			Msg("tracker sweeper started")

		for {
			select {
			case <-ticker.C:
				evicted := w.tracker.Sweep(time.Now(), w.idleTTL)
				if evicted > 0 {
					w.logger.Debug().
						Int("evicted", evicted).
						Int("remaining", w.tracker.Len()).
						Msg("swept stale rate limit records")
				}
			case <-w.stop:
				w.logger.Info().Msg("tracker sweeper stopped")
				return
			}
		}
	}()
}

// Stop terminates the sweep loop. Safe to call once.
func (w *TrackerSweeper) Stop() {
	close(w.stop)
}
