// Package email provides an SMTP client for sending email notifications.
package email

import (
	"errors"

	"gopkg.in/mail.v2"
)

// ErrNotConfigured is returned when no SMTP host is set. An unconfigured
// transport fails every send; that is a legitimate delivery outcome, not a
// startup error.
var ErrNotConfigured = errors.New("email transport not configured")

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

func (c *Client) Send(to, subject, body string) error {
	if c.smtpHost == "" {
		return ErrNotConfigured
	}

	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}
