package model

// FeedbackSubmission is one feedback payload received from the front end.
// It lives only for the duration of a single request and is never persisted.
type FeedbackSubmission struct {
	TaskID        string
	QuestionText  string
	UserAnswer    string
	CorrectAnswer string
	Description   string
	Timestamp     string // raw client-supplied value, resolved by the service before composition
	UserAgent     string
}

// HasRequiredFields reports whether the three mandatory fields are present.
// Empty strings count as absent; all other fields are display-only.
func (s FeedbackSubmission) HasRequiredFields() bool {
	return s.TaskID != "" && s.Description != "" && s.QuestionText != ""
}

// ComposedMessage is the pair of equivalent renderings produced from one
// submission, plus the subject line derived from its task id.
type ComposedMessage struct {
	Subject string
	HTML    string
	Text    string
}
