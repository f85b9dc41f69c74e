package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/nicshik/mathstat-quiz-backend/config"
	_ "github.com/nicshik/mathstat-quiz-backend/docs" // Swagger docs
	"github.com/nicshik/mathstat-quiz-backend/internal/controller"
	"github.com/nicshik/mathstat-quiz-backend/internal/email"
	"github.com/nicshik/mathstat-quiz-backend/internal/logger"
	"github.com/nicshik/mathstat-quiz-backend/internal/service"
)

// @title Mathstat Quiz Backend API
// @version 1.0.0
// @description Relays quiz-question feedback from the Mathstat Quiz front end as email to a fixed recipient.
// @host localhost:3000
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			NewGinEngine,
			NewEmailSender,
			email.NewReadiness,
			service.NewComposerService,
			service.NewFeedbackService,
			controller.NewFeedbackController,
			controller.NewSystemController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(VerifyEmailOnStartup),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// Browser calls are restricted to the fixed front-end origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://nicshik.github.io"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewEmailSender picks the mail provider from config. Without credentials
// the log provider is substituted so the service stays runnable locally.
func NewEmailSender(cfg *config.Config) email.Sender {
	switch cfg.Email.Provider {
	case "resend":
		if cfg.Email.ResendAPIKey == "" {
			log.Warn().Msg("RESEND_API_KEY is not set. Falling back to the log provider.")
			return email.NewLogSender()
		}
		return email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.User)
	case "log":
		return email.NewLogSender()
	default:
		if cfg.Email.User == "" || cfg.Email.Password == "" {
			log.Warn().Msg("EMAIL_USER/EMAIL_PASSWORD are not set. Falling back to the log provider.")
			return email.NewLogSender()
		}
		return email.NewSMTPSender(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.User, cfg.Email.Password)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	feedbackCtrl *controller.FeedbackController,
	systemCtrl *controller.SystemController,
) {
	router.GET("/", systemCtrl.GetAPIInfo)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", systemCtrl.GetHealth)
		apiGroup.POST("/feedback", feedbackCtrl.SubmitFeedback)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Mathstat Quiz backend starting on port %s (env: %s)", cfg.Server.Port, cfg.Env)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// VerifyEmailOnStartup checks the relay once in the background and records
// the outcome for the health endpoint. Never blocks request handling.
func VerifyEmailOnStartup(lc fx.Lifecycle, sender email.Sender, readiness *email.Readiness) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				verifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := sender.Verify(verifyCtx); err != nil {
					log.Error().Err(err).Msg("Email configuration error")
					readiness.Set(false)
					return
				}
				log.Info().Msg("Email service ready")
				readiness.Set(true)
			}()
			return nil
		},
	})
}
