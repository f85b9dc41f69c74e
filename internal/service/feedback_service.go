package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/nicshik/mathstat-quiz-backend/config"
	"github.com/nicshik/mathstat-quiz-backend/internal/dto"
	"github.com/nicshik/mathstat-quiz-backend/internal/email"
	"github.com/nicshik/mathstat-quiz-backend/internal/model"
)

// ErrMissingRequiredFields rejects a submission missing taskId, description
// or questionText. No composition or dispatch happens in that case.
var ErrMissingRequiredFields = errors.New("missing required fields")

// FeedbackService runs the full pipeline for one submission:
// validate -> compose -> dispatch. Dispatch is synchronous; a relay failure
// is terminal for the request.
type FeedbackService interface {
	Submit(ctx context.Context, req dto.FeedbackRequest) error
}

type feedbackService struct {
	composer ComposerService
	sender   email.Sender
	cfg      *config.Config
	now      func() time.Time
}

func NewFeedbackService(composer ComposerService, sender email.Sender, cfg *config.Config) FeedbackService {
	return &feedbackService{
		composer: composer,
		sender:   sender,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *feedbackService) Submit(ctx context.Context, req dto.FeedbackRequest) error {
	var sub model.FeedbackSubmission
	if err := copier.Copy(&sub, &req); err != nil {
		log.Error().Err(err).Msg("Failed to copy FeedbackRequest to FeedbackSubmission")
		return fmt.Errorf("error mapping feedback request: %w", err)
	}

	if !sub.HasRequiredFields() {
		log.Warn().
			Str("taskID", sub.TaskID).
			Msg("Feedback rejected: required fields missing")
		return ErrMissingRequiredFields
	}

	msg, err := s.composer.Compose(sub, s.resolveTimestamp(sub.Timestamp))
	if err != nil {
		return fmt.Errorf("error composing feedback email: %w", err)
	}

	if err := s.sender.Send(ctx, email.Message{
		To:      s.cfg.Email.Recipient,
		ReplyTo: s.cfg.Email.User,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}); err != nil {
		log.Error().Err(err).Str("taskID", sub.TaskID).Msg("Feedback dispatch failed")
		return err
	}

	log.Info().Str("taskID", sub.TaskID).Msg("Feedback received and relayed")
	return nil
}

// resolveTimestamp parses the client-supplied value once, so that both mail
// bodies render the same instant. The front end sends Date.toISOString();
// epoch milliseconds are accepted too. Absent or unparsable values fall
// back to the current time.
func (s *feedbackService) resolveTimestamp(raw string) time.Time {
	if raw == "" {
		return s.now()
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms)
	}
	log.Warn().Str("timestamp", raw).Msg("Unparsable submission timestamp, using current time")
	return s.now()
}
