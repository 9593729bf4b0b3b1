package model

import (
	"errors"
	"time"
)

// Type identifies the delivery channel of a notification. The set is closed:
// any other value is rejected before a notification is created.
type Type string

const (
	TypeEmail Type = "EMAIL"
	TypeSMS   Type = "SMS"
	TypeInApp Type = "IN_APP"
)

// Valid reports whether t is one of the known channel types.
func (t Type) Valid() bool {
	switch t {
	case TypeEmail, TypeSMS, TypeInApp:
		return true
	}
	return false
}

// Status is the lifecycle status of a notification. SENT and FAILED are
// terminal: once reached, no further dispatch attempts are made.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusSent    Status = "SENT"
	StatusFailed  Status = "FAILED"
)

// Terminal reports whether s is a final status.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusFailed
}

var (
	ErrInvalidType          = errors.New("invalid notification type")
	ErrMissingEmailMetadata = errors.New("email notifications require recipient email in metadata")
	ErrMissingPhoneMetadata = errors.New("sms notifications require recipient phone number in metadata")
)

// Metadata keys required per channel type.
const (
	MetadataEmailKey = "email"
	MetadataPhoneKey = "phoneNumber"
)

// ValidateMetadata checks that the channel-specific metadata field required
// by t is present.
func ValidateMetadata(t Type, metadata map[string]string) error {
	switch t {
	case TypeEmail:
		if metadata[MetadataEmailKey] == "" {
			return ErrMissingEmailMetadata
		}
	case TypeSMS:
		if metadata[MetadataPhoneKey] == "" {
			return ErrMissingPhoneMetadata
		}
	}
	return nil
}

// Notification is one message to be delivered to one user through one channel.
type Notification struct {
	ID          string            `bson:"_id" json:"id"`
	UserID      string            `bson:"user_id" json:"userId"`
	Type        Type              `bson:"type" json:"type"`
	Title       string            `bson:"title" json:"title"`
	Content     string            `bson:"content" json:"content"`
	Metadata    map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Status      Status            `bson:"status" json:"status"`
	RetryCount  int               `bson:"retry_count" json:"retryCount"`
	DeliveredAt *time.Time        `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updatedAt"`
}
