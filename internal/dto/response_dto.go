package dto

// FeedbackAcceptedResponse is returned when the relay accepted the message.
type FeedbackAcceptedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// FeedbackErrorResponse covers both validation and dispatch failures.
// Error carries the underlying detail and is only populated outside
// production.
type FeedbackErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	EmailReady bool   `json:"emailReady"`
}

type APIInfoResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Frontend  string            `json:"frontend"`
}
