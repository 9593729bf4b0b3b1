package channel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ns-platform/notification-service/internal/model"
)

type fakeEmailClient struct {
	to, subject, body string
	err               error
}

func (f *fakeEmailClient) Send(to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

type fakeSMSClient struct {
	to, text string
	err      error
}

func (f *fakeSMSClient) Send(to, text string) error {
	f.to, f.text = to, text
	return f.err
}

type fakeDeliveryStore struct {
	id  string
	at  time.Time
	err error
}

func (f *fakeDeliveryStore) MarkDelivered(_ context.Context, id string, at time.Time) error {
	f.id, f.at = id, at
	return f.err
}

func TestEmailSender_Send(t *testing.T) {
	client := &fakeEmailClient{}
	s := NewEmailSender(client)

	n := model.Notification{
		ID:       "n1",
		Type:     model.TypeEmail,
		Title:    "Hi",
		Content:  "Hello",
		Metadata: map[string]string{"email": "user@example.com"},
	}

	assert.NoError(t, s.Send(context.Background(), n))
	assert.Equal(t, "user@example.com", client.to)
	assert.Equal(t, "Hi", client.subject)
	assert.Equal(t, "Hello", client.body)
}

func TestEmailSender_Send_MissingRecipient(t *testing.T) {
	s := NewEmailSender(&fakeEmailClient{})

	err := s.Send(context.Background(), model.Notification{ID: "n1", Type: model.TypeEmail})
	assert.ErrorIs(t, err, model.ErrMissingEmailMetadata)
}

func TestSMSSender_Send(t *testing.T) {
	client := &fakeSMSClient{}
	s := NewSMSSender(client)

	n := model.Notification{
		ID:       "n1",
		Type:     model.TypeSMS,
		Title:    "Hi",
		Content:  "Hello",
		Metadata: map[string]string{"phoneNumber": "+15551234567"},
	}

	assert.NoError(t, s.Send(context.Background(), n))
	assert.Equal(t, "+15551234567", client.to)
	assert.Equal(t, "Hi: Hello", client.text)
}

func TestSMSSender_Send_MissingRecipient(t *testing.T) {
	s := NewSMSSender(&fakeSMSClient{})

	err := s.Send(context.Background(), model.Notification{ID: "n1", Type: model.TypeSMS})
	assert.ErrorIs(t, err, model.ErrMissingPhoneMetadata)
}

func TestInAppSender_Send(t *testing.T) {
	store := &fakeDeliveryStore{}
	s := NewInAppSender(store)

	assert.NoError(t, s.Send(context.Background(), model.Notification{ID: "n1", Type: model.TypeInApp}))
	assert.Equal(t, "n1", store.id)
	assert.False(t, store.at.IsZero())
}

func TestInAppSender_Send_StoreFailure(t *testing.T) {
	store := &fakeDeliveryStore{err: errors.New("store down")}
	s := NewInAppSender(store)

	assert.Error(t, s.Send(context.Background(), model.Notification{ID: "n1", Type: model.TypeInApp}))
}
