package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-request-backend/config"
	_ "project-request-backend/docs" // Important for Swagger
	v1 "project-request-backend/internal/delivery/http/v1"
	"project-request-backend/internal/usecase"
	"project-request-backend/pkg/audit"
	"project-request-backend/pkg/email"
	"project-request-backend/pkg/logger"
	"project-request-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Project Request API
// @version         1.0
// @description     Project request intake: validates submissions and sends the notification and confirmation emails.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting project request service", "port", cfg.Port, "transport", cfg.MailTransport)
	gin.SetMode(cfg.GinMode)

	// 3. Load Site Copy
	site, err := config.LoadSite(cfg.SiteConfigFile)
	if err != nil {
		logger.Log.Error("Failed to load site config", "error", err)
		os.Exit(1)
	}

	// 4. Setup Audit Trail
	env := "development"
	if cfg.IsProduction() {
		env = "production"
	}
	auditLog := audit.New("project-requests", env, cfg.AuditLogFile)
	defer auditLog.Sync()

	// 5. Setup Mail Transport
	transport, err := newTransport(cfg)
	if err != nil {
		logger.Log.Error("Failed to setup mail transport", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	projectRequestUC := usecase.NewProjectRequestUsecase(transport, validation.New(), usecase.MailSettings{
		From:            email.Address{Name: cfg.MailFromName, Email: cfg.MailFrom},
		BusinessMailbox: email.Address{Name: cfg.BrandName, Email: cfg.ContactEmailTo},
		Brand:           cfg.BrandName,
		BusinessPhone:   cfg.BusinessPhone,
		NextSteps:       site.NextSteps,
		SendTimeout:     cfg.MailSendTimeout,
	}, auditLog)

	// 7. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		ProjectRequestUC: projectRequestUC,
		Site:             site,
		Config:           cfg,
	})
	if err != nil {
		logger.Log.Error("Failed to setup router", "error", err)
		os.Exit(1)
	}

	// 8. Start Server
	// Two sequential sends can take up to twice the send timeout
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2*cfg.MailSendTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newTransport(cfg *config.Config) (email.Transport, error) {
	switch cfg.MailTransport {
	case config.TransportSMTP:
		return email.NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	case config.TransportMailerSend:
		return email.NewMailerSendTransport(cfg.MailerSendAPIKey), nil
	case config.TransportLog:
		logger.Log.Warn("Mail transport is set to log: emails will not be delivered")
		return email.NewLogTransport(logger.Log), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.MailTransport)
	}
}
