package email

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPSender submits messages to an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender that authenticates as user and also uses
// that address as the envelope From.
func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}
}

// Send submits the message over SMTP. gomail has no context support, so the
// ctx parameter only satisfies the Sender interface.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return nil
}

// Verify dials the relay with the configured credentials and closes the
// connection immediately.
func (s *SMTPSender) Verify(ctx context.Context) error {
	closer, err := s.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp: verification dial failed: %w", err)
	}
	return closer.Close()
}
