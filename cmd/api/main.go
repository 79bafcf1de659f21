package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/home-affordability/internal/config"
	"github.com/Dan9191/home-affordability/internal/handler"
	"github.com/Dan9191/home-affordability/internal/integrations/cbr"
	"github.com/Dan9191/home-affordability/internal/logging"
	"github.com/Dan9191/home-affordability/internal/middleware"
	"github.com/Dan9191/home-affordability/internal/service"
	"github.com/Dan9191/home-affordability/internal/utils/email"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logging.New(os.Getenv("LOG_LEVEL")).Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := logging.New(cfg.LogLevel)

	// Reference rate with scheduled refresh
	cbrClient := cbr.NewCBRClient(cfg, logger)
	rates := service.NewRateService(cbrClient, cfg.RateCacheTTL, logger)
	if err := rates.Start(cfg.RateRefreshSchedule); err != nil {
		logger.Fatalf("Failed to schedule key rate refresh: %v", err)
	}
	defer rates.Stop()

	// Initialize layers
	var mailer service.ReportSender
	if cfg.MailEnabled() {
		mailer = email.NewSender(cfg, logger)
	} else {
		logger.Warn("SMTP is not configured, affordability reports are disabled")
	}
	svc := service.NewService(cfg, rates, mailer, logger)
	h := handler.NewHandler(svc, logger)

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, /api routes are unauthenticated")
	}
	r := handler.NewRouter(h, middleware.AuthMiddleware(cfg.JWTSecret), logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Server failed: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	logger.Info("Server exited")
}
