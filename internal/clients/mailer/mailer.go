package mailer

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/brightpixel/studio-api/pkg/config"
)

// Client emails the studio operator about invoice outcomes.
type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

// Noop stands in when SMTP is not configured.
type Noop struct{}

func (Noop) SendMessage(_, _ string) error { return nil }

func (c *Client) SendMessage(subject, message string) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", c.cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", message)

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
