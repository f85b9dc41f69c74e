package email

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogSender logs messages instead of delivering them. Used when no mail
// credentials are configured, e.g. local development.
type LogSender struct{}

// NewLogSender creates a new log-based email sender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the message details instead of sending.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("text", msg.Text).
		Msg("Email not sent (log provider)")
	return nil
}

func (s *LogSender) Verify(ctx context.Context) error {
	return nil
}
