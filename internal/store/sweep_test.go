package store

import (
	"testing"
	"time"
)

func TestSweepExemptions(t *testing.T) {
	s := newSeededStore()

	// Far beyond any finite burn window.
	for _, elapsed := range []time.Duration{time.Hour, 24 * time.Hour, 365 * 24 * time.Hour} {
		s2 := newSeededStore()
		s2.Sweep(testBase.Add(elapsed))

		if _, err := s2.GetRoom("chat1"); err != nil {
			t.Errorf("fixed room evicted after %v", elapsed)
		}
	}

	// A non-fixed room with zero burn never expires either.
	room, _ := s.CreateRoom("forever", 0, "u1")
	s.Sweep(testBase.Add(1000 * time.Hour))
	if _, err := s.GetRoom(room.ID); err != nil {
		t.Errorf("zero-burn room evicted")
	}
}

func TestSweepBoundary(t *testing.T) {
	// chat2 burns after 60 minutes; its seed message is at testBase.
	expiry := testBase.Add(60 * time.Minute)

	t.Run("retained just before expiry", func(t *testing.T) {
		s := newSeededStore()

		if evicted := s.Sweep(expiry.Add(-time.Millisecond)); evicted != nil {
			t.Fatalf("evicted %d rooms before expiry", len(evicted))
		}
		if _, err := s.GetRoom("chat2"); err != nil {
			t.Errorf("room evicted before its expiry")
		}
	})

	t.Run("evicted just after expiry", func(t *testing.T) {
		s := newSeededStore()

		s.Sweep(expiry.Add(time.Millisecond))
		if _, err := s.GetRoom("chat2"); err == nil {
			t.Errorf("room survived past its expiry")
		}
	})
}

func TestSweepScenario(t *testing.T) {
	t.Run("inactive room evicted, fixed room retained", func(t *testing.T) {
		s := newSeededStore()

		evicted := s.Sweep(testBase.Add(61 * time.Minute))
		if len(evicted) != 2 { // chat2 and chat3 share the 60-minute burn
			t.Fatalf("expected 2 evictions, got %d", len(evicted))
		}
		if _, err := s.GetRoom("chat1"); err != nil {
			t.Errorf("fixed room evicted")
		}
		if s.Count() != 1 {
			t.Errorf("expected 1 room left, got %d", s.Count())
		}
	})

	t.Run("a message before eviction resets the clock", func(t *testing.T) {
		s := newSeededStore()

		s.now = fixedClock(testBase.Add(30 * time.Minute))
		if _, err := s.AppendMessage("chat2", "a", "still here"); err != nil {
			t.Fatalf("AppendMessage: %v", err)
		}

		s.Sweep(testBase.Add(61 * time.Minute))
		if _, err := s.GetRoom("chat2"); err != nil {
			t.Errorf("active room evicted")
		}
		if _, err := s.GetRoom("chat3"); err == nil {
			t.Errorf("inactive room survived")
		}
	})
}

func TestSweepPurgesCreatorMapping(t *testing.T) {
	s := NewMemoryStore()
	s.now = fixedClock(testBase)

	if _, err := s.CreateRoom("ephemeral", 1, "alice"); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	s.Sweep(testBase.Add(2 * time.Minute))

	if _, ok := s.RoomForCreator("alice"); ok {
		t.Errorf("creator mapping survived eviction")
	}
}

func TestSweepEmptyStore(t *testing.T) {
	s := NewMemoryStore()
	if evicted := s.Sweep(time.Now()); evicted != nil {
		t.Errorf("evicted rooms from an empty store")
	}
}
