package worker

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ns-platform/notification-service/internal/model"
	"github.com/ns-platform/notification-service/internal/rabbitmq/queue"
)

// MaxRetries is the process-wide ceiling on dispatch retries per
// notification. The initial attempt plus MaxRetries retries gives at most
// four dispatches before the notification is marked FAILED.
const MaxRetries = 3

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks

type notificationQueue interface {
	Consume(ctx context.Context) (<-chan amqp091.Delivery, error)
	Publish(ctx context.Context, msg queue.Message) error
}

type notificationDispatcher interface {
	Dispatch(ctx context.Context, n model.Notification) error
}

type notificationService interface {
	GetStatusByID(ctx context.Context, strategy retry.Strategy, id string) (model.Status, error)
	SetStatus(ctx context.Context, strategy retry.Strategy, id string, status model.Status) error
}

// Notifier owns the queue consumption loop, the bounded-retry policy and all
// post-creation status transitions. No other component writes status.
type Notifier struct {
	queue      notificationQueue
	dispatcher notificationDispatcher
	service    notificationService
}

func NewNotifier(q notificationQueue, d notificationDispatcher, s notificationService) *Notifier {
	return &Notifier{
		queue:      q,
		dispatcher: d,
		service:    s,
	}
}

// Run consumes the delivery queue with a pool of workers until the context is
// cancelled, then drains in-flight handlers before returning. Each delivered
// message is handled to completion: dispatched, its status written if the
// attempt was terminal, and acked.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	deliveries, err := n.queue.Consume(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		return
	}

	var wg sync.WaitGroup
	wg.Add(workerCount)

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for d := range deliveries {
				n.handle(ctx, strategy, d)
			}

			zlog.Logger.Printf("worker-%d shutting down", id)
		}(i)
	}

	wg.Wait()
	zlog.Logger.Print("notifier stopped")
}

// handle applies the retry/status state machine to one delivered message.
//
// Malformed payloads are nacked back onto the queue: they indicate a broker
// or process fault, not a business failure. A dispatch failure below the
// retry ceiling re-enqueues an incremented snapshot as a new message and acks
// the original; the stored status stays PENDING until an attempt is terminal.
func (n *Notifier) handle(ctx context.Context, strategy retry.Strategy, d amqp091.Delivery) {
	var msg queue.Message
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to unmarshal message, requeueing")
		if nackErr := d.Nack(false, true); nackErr != nil {
			zlog.Logger.Error().Err(nackErr).Msg("failed to nack message")
		}
		return
	}

	// A redelivered copy of an already-finished notification must not be
	// dispatched again. The check is best-effort: the guarded status update
	// below keeps terminal records immutable regardless.
	status, err := n.service.GetStatusByID(ctx, strategy, msg.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.ID).Msg("failed to get notification status")
	} else if status.Terminal() {
		zlog.Logger.Info().Str("id", msg.ID).Str("status", string(status)).Msg("notification already finished, skipping")
		n.ack(d, msg.ID)
		return
	}

	if dispatchErr := n.dispatcher.Dispatch(ctx, msg.Notification()); dispatchErr != nil {
		if msg.RetryCount < MaxRetries {
			msg.RetryCount++
			zlog.Logger.Warn().Err(dispatchErr).Str("id", msg.ID).Int("retry_count", msg.RetryCount).Msg("dispatch failed, re-enqueueing")

			// The retry is a new message; the original is acked either way.
			// Stored status stays PENDING between attempts.
			if pubErr := n.queue.Publish(ctx, msg); pubErr != nil {
				zlog.Logger.Error().Err(pubErr).Str("id", msg.ID).Msg("failed to re-enqueue notification")
			}

			n.ack(d, msg.ID)
			return
		}

		zlog.Logger.Error().Err(dispatchErr).Str("id", msg.ID).Msg("retries exhausted, marking notification failed")
		n.setStatus(ctx, strategy, msg.ID, model.StatusFailed)
		n.ack(d, msg.ID)
		return
	}

	n.setStatus(ctx, strategy, msg.ID, model.StatusSent)
	n.ack(d, msg.ID)
}

// setStatus writes a terminal status. A failed write is logged and the
// message is still acked: status persistence must not block queue progress.
func (n *Notifier) setStatus(ctx context.Context, strategy retry.Strategy, id string, status model.Status) {
	if err := n.service.SetStatus(ctx, strategy, id, status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Str("status", string(status)).Msg("failed to update notification status")
	}
}

func (n *Notifier) ack(d amqp091.Delivery, id string) {
	if err := d.Ack(false); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to ack message")
	}
}
