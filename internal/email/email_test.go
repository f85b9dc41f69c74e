package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	sender := NewLogSender()

	err := sender.Send(context.Background(), Message{
		To:      "teacher@example.com",
		Subject: "Test Subject",
		HTML:    "<h1>Привет</h1>",
		Text:    "Привет",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "teacher@example.com")
	assert.Contains(t, out, "Test Subject")
	assert.Contains(t, out, "Привет")
}

func TestLogSender_VerifyAlwaysOK(t *testing.T) {
	assert.NoError(t, NewLogSender().Verify(context.Background()))
}

func TestResendSender_VerifyRequiresAPIKey(t *testing.T) {
	assert.Error(t, NewResendSender("", "quiz-bot@example.com").Verify(context.Background()))
	assert.NoError(t, NewResendSender("re_123", "quiz-bot@example.com").Verify(context.Background()))
}

func TestReadiness(t *testing.T) {
	r := NewReadiness()
	assert.False(t, r.Ready())

	r.Set(true)
	assert.True(t, r.Ready())

	r.Set(false)
	assert.False(t, r.Ready())
}
