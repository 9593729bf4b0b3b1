package channel

import (
	"context"
	"time"

	"github.com/ns-platform/notification-service/internal/model"
)

type deliveryStore interface {
	MarkDelivered(ctx context.Context, id string, at time.Time) error
}

// InAppSender delivers IN_APP notifications. Delivery is a store write: the
// notification becomes visible to the user the moment the record carries a
// delivery time, so the adapter succeeds whenever the store is writable.
type InAppSender struct {
	store deliveryStore
}

func NewInAppSender(store deliveryStore) *InAppSender {
	return &InAppSender{store: store}
}

func (s *InAppSender) Send(ctx context.Context, n model.Notification) error {
	return s.store.MarkDelivered(ctx, n.ID, time.Now().UTC())
}
