package models

// Room represents an anonymous chat room holding an ordered message log.
type Room struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	UserCount   int        `json:"users"`
	Preview     string     `json:"preview"`
	BurnMinutes int        `json:"burnTime"` // 0 means the room never expires
	CreatorID   *string    `json:"creator"`  // nil for seeded rooms
	Fixed       bool       `json:"fixed"`
	Messages    []*Message `json:"messages"`
}

// LastMessage returns the most recent message in the room's log.
// The log is seeded with a system banner at creation and never emptied
// afterwards, so this is non-nil for any live room.
func (r *Room) LastMessage() *Message {
	if len(r.Messages) == 0 {
		return nil
	}
	return r.Messages[len(r.Messages)-1]
}
