package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
)

const (
	ExchangeName = "conversation-exchange"
	QueueName    = "conversation-outbound"
	RoutingKey   = "conversation"
)

// DeliveryMessage is the payload handed to the messaging gateway, which owns
// the mapping from conversation id to an actual channel.
type DeliveryMessage struct {
	MessageID      uuid.UUID `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	Text           string    `json:"text"`
	QueuedAt       time.Time `json:"queued_at"`
}

// Sink publishes reminder deliveries to the messaging gateway exchange.
type Sink struct {
	publisher *rabbitmq.Publisher
	strategy  retry.Strategy
	now       func() time.Time
}

// NewSink declares the outbound exchange and queue on the given channel and
// returns a sink publishing to it.
func NewSink(ch *rabbitmq.Channel, strategy retry.Strategy) (*Sink, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	q, err := qm.DeclareQueue(QueueName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare outbound queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the outbound queue: %w", err)
	}

	return &Sink{
		publisher: rabbitmq.NewPublisher(ch, exchange.Name()),
		strategy:  strategy,
		now:       time.Now,
	}, nil
}

// Deliver publishes the text for one conversation. The gateway consumes the
// queue and reports failures out-of-band; a publish error here surfaces as a
// delivery failure so the dispatcher retries on its next cycle.
func (s *Sink) Deliver(ctx context.Context, conversationID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := DeliveryMessage{
		MessageID:      uuid.New(),
		ConversationID: conversationID,
		Text:           text,
		QueuedAt:       s.now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery message: %w", err)
	}

	return s.publisher.PublishWithRetry(body, RoutingKey, "application/json", s.strategy)
}
