// Package sms provides a client for sending SMS notifications through a
// Twilio-style messages API.
package sms

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotConfigured is returned when no provider credentials are set. An
// unconfigured transport fails every send; that is a legitimate delivery
// outcome, not a startup error.
var ErrNotConfigured = errors.New("sms transport not configured")

const apiURLFormat = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

// Client represents an SMS provider client used to send notifications.
type Client struct {
	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

// NewClient creates a new SMS Client with the given provider credentials.
func NewClient(accountSID, authToken, from string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     &http.Client{},
	}
}

// Send sends an SMS message to the given phone number.
//
// It posts a form-encoded request to the provider's messages endpoint and
// returns an error if the request fails or the API responds with a non-2xx
// status.
func (c *Client) Send(to, text string) error {
	if c.accountSID == "" || c.authToken == "" {
		return ErrNotConfigured
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", text)

	endpoint := fmt.Sprintf(apiURLFormat, c.accountSID)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sms API error: %s", resp.Status)
	}

	return nil
}
