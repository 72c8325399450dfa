package store

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/eldtechnologies/anonchat/internal/ids"
	"github.com/eldtechnologies/anonchat/internal/models"
)

// RoomStore defines the interface for room and message state.
// Both the HTTP API and the bot front-end drive the same operations.
type RoomStore interface {
	// Room operations
	CreateRoom(name string, burnMinutes int, creatorID string) (*models.Room, error)
	DeleteRoom(roomID, requesterID string) error
	GetRoom(roomID string) (*models.Room, error)
	ListRooms() []*models.Room
	RoomForCreator(creatorID string) (*models.Room, bool)

	// Message operations
	AppendMessage(roomID, sender, text string) (*models.Message, error)

	// Maintenance
	Sweep(now time.Time) []*models.Room
	Count() int
}

// previewLimit is the number of characters of the last message shown
// in room listings.
const previewLimit = 50

// anonymousSender is the fallback sender label for messages submitted
// without one.
const anonymousSender = "Anonymous"

// MemoryStore is the in-memory RoomStore implementation. All state is
// process-lifetime only; a restart resets to the seeded rooms.
//
// A single mutex serializes every operation, so a create, a delete, an
// append and a full sweep pass are each atomic with respect to the
// others. Read operations return snapshots, never live internals.
type MemoryStore struct {
	mu        sync.Mutex
	rooms     []*models.Room    // newest first
	byCreator map[string]string // creator identity -> room id, last write wins

	now func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCreator: make(map[string]string),
		now:       time.Now,
	}
}

// CreateRoom creates a room, prepends it to the collection and seeds it
// with a system banner describing the burn policy. The display name is
// decorated with a synthetic anonymous creator tag. The creator-lookup
// entry for creatorID is overwritten if one exists.
//
// Input validation is the caller's concern: the validating API front-end
// rejects empty names before calling, the bot front-end trusts its caller.
func (s *MemoryStore) CreateRoom(name string, burnMinutes int, creatorID string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creator := creatorID
	room := &models.Room{
		ID:          ids.NewRoomID(),
		Name:        fmt.Sprintf("(AnonUser-%d) %s", 1000+rand.Intn(9000), name),
		UserCount:   1,
		Preview:     "New chat created. Be the first to send a message!",
		BurnMinutes: burnMinutes,
		CreatorID:   &creator,
	}

	banner := &models.Message{
		ID:        ids.NewMessageID(),
		Sender:    "System",
		Text:      "Chat created. " + burnBannerText(burnMinutes),
		Timestamp: s.now(),
		System:    true,
	}
	room.Messages = append(room.Messages, banner)

	s.rooms = append([]*models.Room{room}, s.rooms...)
	s.byCreator[creatorID] = room.ID

	return snapshot(room), nil
}

// burnBannerText renders the burn policy for a creation banner.
func burnBannerText(burnMinutes int) string {
	if burnMinutes == 0 {
		return "This chat has infinite burn time."
	}
	return fmt.Sprintf("This chat will be automatically deleted after %s of inactivity.",
		FormatMinutes(float64(burnMinutes)))
}

// DeleteRoom removes a room. It fails with ErrRoomNotFound for an
// unknown id and ErrForbidden when the room is fixed or the requester
// is not its creator. Seeded rooms carry no creator and are therefore
// undeletable through this path. On success the requester's
// creator-lookup entry is dropped.
func (s *MemoryStore) DeleteRoom(roomID, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(roomID)
	if idx < 0 {
		return ErrRoomNotFound
	}
	room := s.rooms[idx]

	if room.Fixed {
		return fmt.Errorf("%w: cannot delete fixed room", ErrForbidden)
	}
	if room.CreatorID == nil || *room.CreatorID != requesterID {
		return fmt.Errorf("%w: only the creator can delete a room", ErrForbidden)
	}

	s.rooms = append(s.rooms[:idx], s.rooms[idx+1:]...)
	delete(s.byCreator, requesterID)

	return nil
}

// GetRoom returns a snapshot of the room with the given id.
func (s *MemoryStore) GetRoom(roomID string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(roomID)
	if idx < 0 {
		return nil, ErrRoomNotFound
	}
	return snapshot(s.rooms[idx]), nil
}

// ListRooms returns snapshots of all rooms in store order, most
// recently created first.
func (s *MemoryStore) ListRooms() []*models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Room, len(s.rooms))
	for i, room := range s.rooms {
		out[i] = snapshot(room)
	}
	return out
}

// RoomForCreator resolves the creator-lookup mapping. The second return
// reports whether a mapping exists at all; the room is nil when the
// mapping points at a room that no longer does.
func (s *MemoryStore) RoomForCreator(creatorID string) (*models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomID, ok := s.byCreator[creatorID]
	if !ok {
		return nil, false
	}
	idx := s.indexOf(roomID)
	if idx < 0 {
		return nil, true
	}
	return snapshot(s.rooms[idx]), true
}

// AppendMessage appends a message to a room's log and refreshes the
// room's preview. This is the only path that advances a room's
// inactivity clock. An empty sender falls back to the anonymous label.
//
// Text validation is the caller's concern, as with CreateRoom.
func (s *MemoryStore) AppendMessage(roomID, sender, text string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(roomID)
	if idx < 0 {
		return nil, ErrRoomNotFound
	}
	room := s.rooms[idx]

	if strings.TrimSpace(sender) == "" {
		sender = anonymousSender
	}

	msg := &models.Message{
		ID:        ids.NewMessageID(),
		Sender:    sender,
		Text:      text,
		Timestamp: s.now(),
	}
	room.Messages = append(room.Messages, msg)
	room.Preview = previewText(text)

	return msg, nil
}

// Sweep evicts every non-fixed room with a finite burn time whose last
// message is older than its burn window. A message exactly at the
// boundary retains the room (strict now < expiry). Creator-lookup
// entries pointing at evicted rooms are dropped as well. Returns the
// evicted rooms.
func (s *MemoryStore) Sweep(now time.Time) []*models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []*models.Room
	var evicted []*models.Room

	for _, room := range s.rooms {
		if room.Fixed || room.BurnMinutes == 0 {
			kept = append(kept, room)
			continue
		}
		last := room.LastMessage()
		if last == nil {
			kept = append(kept, room)
			continue
		}
		expiry := last.Timestamp.Add(time.Duration(room.BurnMinutes) * time.Minute)
		if now.Before(expiry) {
			kept = append(kept, room)
		} else {
			evicted = append(evicted, room)
		}
	}

	if len(evicted) == 0 {
		return nil
	}
	s.rooms = kept

	gone := make(map[string]bool, len(evicted))
	for _, room := range evicted {
		gone[room.ID] = true
	}
	for creator, roomID := range s.byCreator {
		if gone[roomID] {
			delete(s.byCreator, creator)
		}
	}

	return evicted
}

// Count returns the number of live rooms.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// indexOf returns the index of a room by id, or -1. Caller holds the lock.
func (s *MemoryStore) indexOf(roomID string) int {
	for i, room := range s.rooms {
		if room.ID == roomID {
			return i
		}
	}
	return -1
}

// snapshot copies a room so callers never observe a mid-append message
// log. Messages are immutable once appended, so sharing the message
// pointers is safe.
func snapshot(room *models.Room) *models.Room {
	c := *room
	c.Messages = append([]*models.Message(nil), room.Messages...)
	return &c
}

// previewText derives a room preview from message text: the first 50
// characters plus an ellipsis marker when longer.
func previewText(text string) string {
	runes := []rune(text)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return text
}
