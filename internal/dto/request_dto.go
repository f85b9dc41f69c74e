package dto

// FeedbackRequest is the body of POST /api/feedback. Required-field checks
// happen in the service so that any missing field yields the same fixed
// user-facing message instead of per-field binding errors. Fields bind
// through FlexString: only taskId, description and questionText gate
// acceptance, everything else is display-only and must bind whatever JSON
// scalar the client sent.
type FeedbackRequest struct {
	TaskID        FlexString `json:"taskId"`
	QuestionText  FlexString `json:"questionText"`
	UserAnswer    FlexString `json:"userAnswer"`
	CorrectAnswer FlexString `json:"correctAnswer"`
	Description   FlexString `json:"description"`
	Timestamp     FlexString `json:"timestamp"`
	UserAgent     FlexString `json:"userAgent"`
}
