package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eldtechnologies/anonchat/internal/metrics"
)

// DefaultSweepInterval is how often the expiry sweeper scans the store.
const DefaultSweepInterval = 60 * time.Second

// Sweeper periodically evicts rooms whose burn window has elapsed
// without activity. One sweep pass is a single atomic store operation;
// between ticks the sweeper holds no state.
type Sweeper struct {
	store    RoomStore
	interval time.Duration
	logger   zerolog.Logger
}

// NewSweeper creates a sweeper over the given store. A non-positive
// interval falls back to DefaultSweepInterval.
func NewSweeper(st RoomStore, interval time.Duration, logger zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		store:    st,
		interval: interval,
		logger:   logger.With().Str("component", "sweeper").Logger(),
	}
}

// Run sweeps on a fixed period until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("expiry sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Sweeper) sweepOnce() {
	start := time.Now()
	evicted := s.store.Sweep(start)

	metrics.SweepDuration.Observe(time.Since(start).Seconds())
	metrics.SweepRuns.Inc()
	metrics.RoomsLive.Set(float64(s.store.Count()))

	for _, room := range evicted {
		metrics.RoomsExpired.Inc()
		s.logger.Info().
			Str("room_id", room.ID).
			Str("name", room.Name).
			Int("burn_minutes", room.BurnMinutes).
			Msg("room expired from inactivity")
	}
}
