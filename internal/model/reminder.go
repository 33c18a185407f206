package model

import (
	"time"
)

// Reminder is a scheduled message tied to a single conversation.
//
// TargetTime and CreatedAt are always UTC-normalized; the timezone a user
// phrased the time in only matters while parsing and rendering. Delivery is
// scoped by ConversationID: a reminder set in a group chat fires in that
// group, never in the user's other conversations.
type Reminder struct {
	ID             int64     `json:"id"`
	InboxID        string    `json:"inbox_id"`
	ConversationID string    `json:"conversation_id"`
	TargetTime     time.Time `json:"target_time"`
	Message        string    `json:"message"`
	Sent           bool      `json:"sent"`
	CreatedAt      time.Time `json:"created_at"`
}
