// Package mail provides the SMTP delivery backend for warning emails.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"roomstock/internal/domain/warning"
)

// Compile-time check that Sender implements warning.Mailer.
var _ warning.Mailer = (*Sender)(nil)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender delivers HTML mail over SMTP.
type Sender struct {
	cfg Config
}

// NewSender creates a new SMTP sender. The connection is established per
// send, not held open.
func NewSender(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers one HTML message to all recipients.
func (s *Sender) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("set from %q: %w", s.cfg.From, err)
	}
	if err := msg.To(recipients...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
