package models

import "time"

// Message represents a single chat message in a room's log.
type Message struct {
	ID        string    `json:"id"` // ULID
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"time"`
	System    bool      `json:"system,omitempty"`
}
