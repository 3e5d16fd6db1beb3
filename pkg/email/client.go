// Package email provides an SMTP client for sending recovery emails.
package email

import (
	"gopkg.in/mail.v2"
)

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	fromName string
}

func NewClient(smtpHost string, smtpPort int, username, password, from, fromName string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Send delivers an HTML email and returns an error when dispatch was not
// confirmed by the transport.
func (c *Client) Send(to, subject, htmlBody string) error {
	message := mail.NewMessage()

	if c.fromName != "" {
		message.SetAddressHeader("From", c.from, c.fromName)
	} else {
		message.SetHeader("From", c.from)
	}
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/html", htmlBody)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}
