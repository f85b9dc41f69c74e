package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicshik/mathstat-quiz-backend/config"
	"github.com/nicshik/mathstat-quiz-backend/internal/controller"
	"github.com/nicshik/mathstat-quiz-backend/internal/email"
	"github.com/nicshik/mathstat-quiz-backend/internal/service"
)

type fakeSender struct {
	sent    []email.Message
	sendErr error
}

func (f *fakeSender) Send(ctx context.Context, msg email.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) Verify(ctx context.Context) error {
	return nil
}

func newRouter(t *testing.T, sender email.Sender, env string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:         env,
		FrontendURL: "https://nicshik.github.io/mathstat-exam-quiz/",
	}
	cfg.Email.User = "quiz-bot@example.com"
	cfg.Email.Recipient = "teacher@example.com"

	feedbackSvc := service.NewFeedbackService(service.NewComposerService(cfg), sender, cfg)
	ctrl := controller.NewFeedbackController(feedbackSvc, cfg)

	r := gin.New()
	r.POST("/api/feedback", ctrl.SubmitFeedback)
	return r
}

func postFeedback(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"taskId": "3a",
	"questionText": "Найти E(X)",
	"userAnswer": "2",
	"correctAnswer": "3",
	"description": "Опечатка",
	"timestamp": "2024-01-01T10:00:00Z",
	"userAgent": "TestAgent/1.0"
}`

func TestSubmitFeedback_Success(t *testing.T) {
	sender := &fakeSender{}
	r := newRouter(t, sender, "development")

	w := postFeedback(r, validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sender.sent, 1)

	var resp struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Спасибо за обратную связь!", resp.Message)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err, "response timestamp must be ISO-8601")
}

func TestSubmitFeedback_MissingDescription(t *testing.T) {
	sender := &fakeSender{}
	r := newRouter(t, sender, "development")

	w := postFeedback(r, `{"taskId":"3a","questionText":"Найти E(X)"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sender.sent, "no dispatch on rejected submission")

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Отсутствуют обязательные поля", resp.Message)
}

// Display-only fields must bind whatever JSON scalar the client sent; only
// the three required fields gate acceptance. Some clients post taskId,
// answers and the epoch-millisecond timestamp as JSON numbers.
func TestSubmitFeedback_NumericFieldsAccepted(t *testing.T) {
	sender := &fakeSender{}
	r := newRouter(t, sender, "development")

	w := postFeedback(r, `{
		"taskId": 3,
		"questionText": "Найти E(X)",
		"userAnswer": 2,
		"correctAnswer": 3,
		"description": "Опечатка",
		"timestamp": 1704103200000,
		"userAgent": "TestAgent/1.0"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "[Матстат Квиз] Задача 3 - Обратная связь", msg.Subject)
	assert.Contains(t, msg.HTML, `<td style="padding: 8px 0; color: #dc3545;">2</td>`)
	assert.Contains(t, msg.HTML, `<td style="padding: 8px 0; color: #28a745;">3</td>`)
	// 1704103200000 ms is 2024-01-01T10:00:00Z, i.e. 13:00 Moscow time.
	assert.Contains(t, msg.Text, "01.01.2024, 13:00:00")
}

func TestSubmitFeedback_MalformedJSON(t *testing.T) {
	sender := &fakeSender{}
	r := newRouter(t, sender, "development")

	w := postFeedback(r, `{"taskId":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sender.sent)
}

func TestSubmitFeedback_DispatchFailure(t *testing.T) {
	t.Run("development exposes the relay error", func(t *testing.T) {
		r := newRouter(t, &fakeSender{sendErr: errors.New("boom")}, "development")

		w := postFeedback(r, validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Ошибка при обработке запроса", resp.Message)
		assert.Equal(t, "boom", resp.Error)
	})

	t.Run("production withholds the relay error", func(t *testing.T) {
		r := newRouter(t, &fakeSender{sendErr: errors.New("boom")}, "production")

		w := postFeedback(r, validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		_, hasError := resp["error"]
		assert.False(t, hasError)
	})
}
