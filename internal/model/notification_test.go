package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_Valid(t *testing.T) {
	assert.True(t, TypeEmail.Valid())
	assert.True(t, TypeSMS.Valid())
	assert.True(t, TypeInApp.Valid())
	assert.False(t, Type("PUSH").Valid())
	assert.False(t, Type("").Valid())
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusSent.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestValidateMetadata(t *testing.T) {
	assert.NoError(t, ValidateMetadata(TypeInApp, nil))
	assert.NoError(t, ValidateMetadata(TypeEmail, map[string]string{"email": "user@example.com"}))
	assert.NoError(t, ValidateMetadata(TypeSMS, map[string]string{"phoneNumber": "+15551234567"}))

	assert.ErrorIs(t, ValidateMetadata(TypeEmail, nil), ErrMissingEmailMetadata)
	assert.ErrorIs(t, ValidateMetadata(TypeEmail, map[string]string{"phoneNumber": "+15551234567"}), ErrMissingEmailMetadata)
	assert.ErrorIs(t, ValidateMetadata(TypeSMS, nil), ErrMissingPhoneMetadata)
	assert.ErrorIs(t, ValidateMetadata(TypeSMS, map[string]string{"email": "user@example.com"}), ErrMissingPhoneMetadata)
}
