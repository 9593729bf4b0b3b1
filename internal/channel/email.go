// Package channel contains the adapters behind the dispatch.Sender interface,
// one per notification type.
package channel

import (
	"context"

	"github.com/ns-platform/notification-service/internal/model"
)

type emailClient interface {
	Send(to, subject, body string) error
}

// EmailSender delivers EMAIL notifications over SMTP.
type EmailSender struct {
	client emailClient
}

func NewEmailSender(client emailClient) *EmailSender {
	return &EmailSender{client: client}
}

func (s *EmailSender) Send(_ context.Context, n model.Notification) error {
	to := n.Metadata[model.MetadataEmailKey]
	if to == "" {
		return model.ErrMissingEmailMetadata
	}

	return s.client.Send(to, n.Title, n.Content)
}
