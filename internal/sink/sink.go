// Package sink defines the delivery boundary between the reminder
// dispatcher and whatever transport actually lands a message in a
// conversation.
package sink

import "context"

//go:generate mockgen -source=sink.go -destination=../mocks/sink/mock.go -package=mocks

// MessageSink delivers text into a conversation. Implementations resolve
// the conversation id to a real channel and must fail cleanly, not hang,
// when the channel no longer exists.
type MessageSink interface {
	Deliver(ctx context.Context, conversationID, text string) error
}
