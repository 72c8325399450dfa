package ids

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// NewRoomID generates a time-ordered UUID v7 string for a new room.
func NewRoomID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewMessageID generates a ULID string for a new message.
// ULIDs sort lexicographically by creation time, matching the
// append-only ordering of a room's message log.
func NewMessageID() string {
	return ulid.Make().String()
}
