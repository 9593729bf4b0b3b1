package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"

	"github.com/ns-platform/notification-service/internal/model"
)

const QueueName = "notification_queue"

// Message is the serialized notification snapshot carried through the queue.
// It travels as a copy of the stored record, not a live reference: the
// retry count on the message is authoritative between attempts, the store
// record only changes on terminal transitions.
type Message struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	Type       model.Type        `json:"type"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	RetryCount int               `json:"retryCount"`
}

// Snapshot builds a queue message from a stored notification.
func Snapshot(n model.Notification) Message {
	return Message{
		ID:         n.ID,
		UserID:     n.UserID,
		Type:       n.Type,
		Title:      n.Title,
		Content:    n.Content,
		Metadata:   n.Metadata,
		RetryCount: n.RetryCount,
	}
}

// Notification converts a queue message back into a notification for dispatch.
func (m Message) Notification() model.Notification {
	return model.Notification{
		ID:         m.ID,
		UserID:     m.UserID,
		Type:       m.Type,
		Title:      m.Title,
		Content:    m.Content,
		Metadata:   m.Metadata,
		RetryCount: m.RetryCount,
	}
}

// NotificationQueue is the durable delivery queue between intake and the
// dispatch worker.
type NotificationQueue struct {
	ch *amqp091.Channel
}

// NewNotificationQueue declares the durable notification queue on the given
// channel. Messages must survive a broker or consumer restart.
func NewNotificationQueue(ch *amqp091.Channel) (*NotificationQueue, error) {
	_, err := ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &NotificationQueue{ch: ch}, nil
}

// Publish enqueues a notification snapshot as a persistent message.
func (q *NotificationQueue) Publish(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = q.ch.PublishWithContext(
		ctx,
		"",        // default exchange
		QueueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Consume registers a manual-ack consumer on the queue. Deliveries stop when
// the context is cancelled; every received delivery must be acked or nacked
// by the caller.
func (q *NotificationQueue) Consume(ctx context.Context) (<-chan amqp091.Delivery, error) {
	deliveries, err := q.ch.ConsumeWithContext(
		ctx,
		QueueName,
		"notifier",
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register consumer: %w", err)
	}

	return deliveries, nil
}
