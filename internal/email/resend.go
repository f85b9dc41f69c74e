package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends emails using the Resend HTTPS API. An alternative to
// SMTP for deployments where outbound port 587 is blocked.
type ResendSender struct {
	client *resend.Client
	from   string
	apiKey string
}

// NewResendSender creates a new Resend email sender.
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		apiKey: apiKey,
	}
}

// Send sends an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

// Verify only checks that an API key is configured. Resend has no cheap
// no-op call to validate credentials against.
func (s *ResendSender) Verify(ctx context.Context) error {
	if s.apiKey == "" {
		return errors.New("resend: RESEND_API_KEY is not set")
	}
	return nil
}
