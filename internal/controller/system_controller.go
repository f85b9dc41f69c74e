package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nicshik/mathstat-quiz-backend/config"
	"github.com/nicshik/mathstat-quiz-backend/internal/dto"
	"github.com/nicshik/mathstat-quiz-backend/internal/email"
)

const apiVersion = "1.0.0"

// SystemController serves the informational root endpoint and the health
// check. Both are reflections of process state, no business logic.
type SystemController struct {
	cfg       *config.Config
	readiness *email.Readiness
}

func NewSystemController(cfg *config.Config, readiness *email.Readiness) *SystemController {
	return &SystemController{
		cfg:       cfg,
		readiness: readiness,
	}
}

// GetAPIInfo godoc
// @Summary Service metadata
// @Description Static service name, version, endpoint descriptions and front-end URL.
// @Tags System
// @Produce json
// @Success 200 {object} dto.APIInfoResponse
// @Router / [get]
func (ctrl *SystemController) GetAPIInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIInfoResponse{
		Status:  "Mathstat Quiz Backend API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"health":   "/api/health - Check API status",
			"feedback": "POST /api/feedback - Submit quiz feedback",
		},
		Frontend: ctrl.cfg.FrontendURL,
	})
}

// GetHealth godoc
// @Summary Health check
// @Description Reports whether the mail relay passed its one-time startup verification. Advisory only, never gates feedback handling.
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (ctrl *SystemController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "ok",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		EmailReady: ctrl.readiness.Ready(),
	})
}
