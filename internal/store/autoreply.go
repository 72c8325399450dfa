package store

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/eldtechnologies/anonchat/internal/metrics"
)

// Auto-reply defaults: after a user message, with this probability,
// a filler reply lands after a uniformly random delay in [min, max).
const (
	defaultReplyProbability = 0.3
	defaultReplyMinDelay    = 2000 * time.Millisecond
	defaultReplyMaxDelay    = 7000 * time.Millisecond
)

var replySenders = []string{
	"NightOwl",
	"Stranger42",
	"Ghost",
	"Wanderer",
	"Echo",
}

var replyPhrases = []string{
	"Interesting, tell me more...",
	"I was just thinking the same thing.",
	"Anyone else here?",
	"Haha, that's true.",
	"Not sure I agree, but ok.",
	"This room is nice.",
	"What do you all think about that?",
	"Been lurking for a while, had to reply to this.",
}

// Simulator schedules probabilistic auto-replies that keep rooms
// feeling alive. A scheduled reply re-resolves its room by id at fire
// time: if the room expired or was deleted in the interim the reply is
// silently dropped. Replies are ordinary messages to the expiry
// sweeper, so a reply resets the room's inactivity clock.
type Simulator struct {
	store       RoomStore
	logger      zerolog.Logger
	probability float64
	minDelay    time.Duration
	maxDelay    time.Duration

	mu   sync.Mutex
	rng  *rand.Rand
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewSimulator creates a Simulator with the reference probability and
// delay window.
func NewSimulator(st RoomStore, logger zerolog.Logger) *Simulator {
	return &Simulator{
		store:       st,
		logger:      logger.With().Str("component", "autoreply").Logger(),
		probability: defaultReplyProbability,
		minDelay:    defaultReplyMinDelay,
		maxDelay:    defaultReplyMaxDelay,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		done:        make(chan struct{}),
	}
}

// MessagePosted rolls the dice after an externally-submitted message
// and possibly schedules a one-shot delayed reply for the room.
func (s *Simulator) MessagePosted(roomID string) {
	s.mu.Lock()
	roll := s.rng.Float64()
	delay := s.minDelay + time.Duration(s.rng.Int63n(int64(s.maxDelay-s.minDelay)))
	sender := replySenders[s.rng.Intn(len(replySenders))]
	text := replyPhrases[s.rng.Intn(len(replyPhrases))]
	s.mu.Unlock()

	if roll >= s.probability {
		return
	}

	metrics.AutoRepliesScheduled.Inc()
	s.wg.Add(1)
	go s.fireAfter(roomID, sender, text, delay)
}

func (s *Simulator) fireAfter(roomID, sender, text string, delay time.Duration) {
	defer s.wg.Done()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-s.done:
		return
	case <-timer.C:
	}

	if _, err := s.store.AppendMessage(roomID, sender, text); err != nil {
		// The room can legitimately be gone by now.
		if !errors.Is(err, ErrRoomNotFound) {
			s.logger.Error().Err(err).Str("room_id", roomID).Msg("auto-reply failed")
		}
		return
	}

	metrics.AutoRepliesFired.Inc()
	metrics.MessagesPosted.WithLabelValues("auto").Inc()
	s.logger.Debug().
		Str("room_id", roomID).
		Str("sender", sender).
		Msg("auto-reply posted")
}

// Close cancels pending replies and waits for their goroutines to
// drain. Safe to call more than once.
func (s *Simulator) Close() {
	s.once.Do(func() { close(s.done) })
	s.wg.Wait()
}
