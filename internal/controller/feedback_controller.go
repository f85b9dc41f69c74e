package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nicshik/mathstat-quiz-backend/config"
	"github.com/nicshik/mathstat-quiz-backend/internal/dto"
	"github.com/nicshik/mathstat-quiz-backend/internal/service"
)

// User-facing messages. Fixed strings: the front end matches on them.
const (
	msgMissingFields   = "Отсутствуют обязательные поля"
	msgThanks          = "Спасибо за обратную связь!"
	msgProcessingError = "Ошибка при обработке запроса"
)

type FeedbackController struct {
	feedbackSvc service.FeedbackService
	cfg         *config.Config
}

func NewFeedbackController(feedbackSvc service.FeedbackService, cfg *config.Config) *FeedbackController {
	return &FeedbackController{
		feedbackSvc: feedbackSvc,
		cfg:         cfg,
	}
}

// SubmitFeedback godoc
// @Summary Submit quiz feedback
// @Description Validates the submission, renders it as an HTML+text email and relays it to the configured recipient. Dispatch is synchronous; the response reflects whether the mail relay accepted the message.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param submission body dto.FeedbackRequest true "Feedback about one quiz question"
// @Success 200 {object} dto.FeedbackAcceptedResponse
// @Failure 400 {object} dto.FeedbackErrorResponse "Required fields missing"
// @Failure 500 {object} dto.FeedbackErrorResponse "Mail relay rejected or failed"
// @Router /api/feedback [post]
func (ctrl *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitFeedback: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.FeedbackErrorResponse{
			Success: false,
			Message: msgMissingFields,
		})
		return
	}

	if err := ctrl.feedbackSvc.Submit(ctx.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrMissingRequiredFields) {
			ctx.JSON(http.StatusBadRequest, dto.FeedbackErrorResponse{
				Success: false,
				Message: msgMissingFields,
			})
			return
		}

		resp := dto.FeedbackErrorResponse{
			Success: false,
			Message: msgProcessingError,
		}
		if !ctrl.cfg.IsProduction() {
			resp.Error = err.Error()
		}
		ctx.JSON(http.StatusInternalServerError, resp)
		return
	}

	ctx.JSON(http.StatusOK, dto.FeedbackAcceptedResponse{
		Success:   true,
		Message:   msgThanks,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
