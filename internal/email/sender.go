// Package email provides mail delivery with pluggable providers.
package email

import "context"

// Message represents an email message to be sent.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string // Plain text fallback
}

// Sender is the interface for mail providers.
type Sender interface {
	// Send submits the message to the relay and blocks until the relay
	// accepts or rejects it. Acceptance is not delivery confirmation.
	Send(ctx context.Context, msg Message) error

	// Verify checks reachability/credentials once at startup. The outcome is
	// advisory; request handling never depends on it.
	Verify(ctx context.Context) error
}
