package store

import (
	"github.com/eldtechnologies/anonchat/internal/models"
)

// SeedDefaults installs the fixed seed rooms a fresh process starts
// with: one permanent infinite-burn room and two one-hour-burn rooms.
// Seeded rooms have no creator and cannot be deleted through the
// ownership check.
func (s *MemoryStore) SeedDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	seeds := []*models.Room{
		{
			ID:          "chat1",
			Name:        "ChatGeralAno-01",
			UserCount:   12,
			Preview:     "Welcome to the main anonymous chat room!",
			BurnMinutes: 0,
			Fixed:       true,
			Messages: []*models.Message{{
				ID:        "m1",
				Sender:    "System",
				Text:      "Welcome to ChatGeralAno-01. This is the main anonymous chat room with infinite burn time. Messages here persist forever.",
				Timestamp: now,
				System:    true,
			}},
		},
		{
			ID:          "chat2",
			Name:        "Discussions",
			UserCount:   19,
			Preview:     "Talk about anything here...",
			BurnMinutes: 60,
			Messages: []*models.Message{{
				ID:        "m1",
				Sender:    "Anonymous",
				Text:      "Anyone want to chat about something interesting?",
				Timestamp: now,
			}},
		},
		{
			ID:          "chat3",
			Name:        "Confessions",
			UserCount:   97,
			Preview:     "Share your secrets anonymously...",
			BurnMinutes: 60,
			Messages: []*models.Message{{
				ID:        "m1",
				Sender:    "Anonymous",
				Text:      "Sometimes it feels good to talk to strangers...",
				Timestamp: now,
			}},
		},
	}

	// Seeds go in listed order, so append rather than prepend.
	s.rooms = append(s.rooms, seeds...)
}
