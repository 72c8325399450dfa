package store

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSweeperRunEvictsStaleRooms(t *testing.T) {
	s := NewMemoryStore()
	s.now = fixedClock(time.Now().Add(-2 * time.Hour)) // seed activity well in the past
	s.SeedDefaults()

	sw := NewSweeper(s, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sw.Run(ctx)

	require.Eventually(t, func() bool {
		return s.Count() == 1 // only the fixed room remains
	}, time.Second, 5*time.Millisecond)

	_, err := s.GetRoom("chat1")
	require.NoError(t, err)
}

func TestNewSweeperDefaultInterval(t *testing.T) {
	sw := NewSweeper(NewMemoryStore(), 0, zerolog.Nop())
	require.Equal(t, DefaultSweepInterval, sw.interval)
}
