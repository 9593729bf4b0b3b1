package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/ns-platform/notification-service/internal/model"
)

var ErrUnknownType = errors.New("unknown notification type")

// Sender delivers a notification through one concrete channel.
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatch/mock.go -package=mocks
type Sender interface {
	Send(ctx context.Context, n model.Notification) error
}

// Dispatcher selects the channel adapter for a notification's type and
// interprets its result. A panicking adapter is converted into a failure so
// the consumer never crashes on a bad channel.
type Dispatcher struct {
	senders map[model.Type]Sender
}

func New(senders map[model.Type]Sender) *Dispatcher {
	return &Dispatcher{senders: senders}
}

// Dispatch invokes exactly one adapter for the notification's type. An
// unknown type should be unreachable given intake validation, but a queue
// message is untrusted input and is surfaced as a failure rather than a panic.
func (d *Dispatcher) Dispatch(ctx context.Context, n model.Notification) (err error) {
	sender, ok := d.senders[n.Type]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownType, n.Type)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("channel adapter panic: %v", r)
		}
	}()

	if err := sender.Send(ctx, n); err != nil {
		return fmt.Errorf("send via %s: %w", n.Type, err)
	}

	return nil
}
