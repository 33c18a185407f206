package dto

// MessageRequest is a free-form inbound message from the tool-calling layer.
type MessageRequest struct {
	InboxID        string `json:"inbox_id" validate:"required"`
	ConversationID string `json:"conversation_id" validate:"required"`
	Text           string `json:"text" validate:"required"`
	Timezone       string `json:"timezone"`
}

// SetReminderRequest creates a reminder from already-extracted arguments.
type SetReminderRequest struct {
	InboxID        string `json:"inbox_id" validate:"required"`
	ConversationID string `json:"conversation_id" validate:"required"`
	Text           string `json:"text" validate:"required"`
	Timezone       string `json:"timezone"`
}

// CancelAllRequest removes every pending reminder for one inbox.
type CancelAllRequest struct {
	InboxID string `json:"inbox_id" validate:"required"`
}
