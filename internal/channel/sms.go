package channel

import (
	"context"
	"fmt"

	"github.com/ns-platform/notification-service/internal/model"
)

type smsClient interface {
	Send(to, text string) error
}

// SMSSender delivers SMS notifications through the configured provider.
type SMSSender struct {
	client smsClient
}

func NewSMSSender(client smsClient) *SMSSender {
	return &SMSSender{client: client}
}

func (s *SMSSender) Send(_ context.Context, n model.Notification) error {
	to := n.Metadata[model.MetadataPhoneKey]
	if to == "" {
		return model.ErrMissingPhoneMetadata
	}

	return s.client.Send(to, fmt.Sprintf("%s: %s", n.Title, n.Content))
}
