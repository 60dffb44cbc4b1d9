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

	"northern-forge-site/config"
	_ "northern-forge-site/docs" // Important for Swagger
	"northern-forge-site/internal/content"
	v1 "northern-forge-site/internal/delivery/http/v1"
	"northern-forge-site/internal/domain"
	"northern-forge-site/internal/ogimage"
	"northern-forge-site/internal/repository/postgres"
	"northern-forge-site/internal/usecase"
	"northern-forge-site/pkg/database"
	"northern-forge-site/pkg/email"
	"northern-forge-site/pkg/flash"
	"northern-forge-site/pkg/logger"
	"northern-forge-site/pkg/redis"
	"northern-forge-site/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Northern Forge AI Site API
// @version         1.0
// @description     Public JSON API behind the Northern Forge AI marketing site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting Northern Forge site", "port", cfg.Port, "offerings", cfg.Offerings)

	ctx := context.Background()
	checks := map[string]usecase.HealthCheck{}

	// 3. Setup contact sinks; the lead store connects before anything else
	// holds resources so a failure can exit directly
	sinks, closeSinks, err := setupSinks(ctx, cfg, checks)
	if err != nil {
		logger.Log.Error("Failed to set up contact sinks", "error", err)
		os.Exit(1)
	}
	defer closeSinks()

	if len(sinks) == 0 {
		logger.Log.Warn("No contact sink configured - contact form will report unavailable")
	}

	// 4. Setup Redis (optional, rate limit counters)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	} else {
		defer redis.Close()
		checks["redis"] = redis.HealthCheck
	}

	// 5. Setup UseCases
	site := content.Site()
	contactUC := usecase.NewContactUsecase(sinks...)
	healthUC := usecase.NewHealthUsecase(checks)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Config:    cfg,
		Site:      site,
		Validate:  validation.New(cfg.Offerings),
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Flash:     flash.NewCodec(cfg.FlashSecret, 5*time.Minute),
		OGImage: ogimage.NewRenderer(ogimage.Card{
			Title:    site.CompanyName,
			Subtitle: site.Hero.Heading,
			Footer:   site.Contact.Email,
		}),
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// setupSinks builds every configured contact sink and registers the health
// checks they bring. The cleanup func is never nil and releases what was opened.
func setupSinks(ctx context.Context, cfg *config.Config, checks map[string]usecase.HealthCheck) ([]domain.ContactSink, func(), error) {
	var sinks []domain.ContactSink
	cleanup := func() {}

	smtpSender := email.NewSMTPSender(cfg)
	if smtpSender.IsConfigured() {
		sinks = append(sinks, smtpSender)
	}

	if mailgunSender := email.NewMailgunSender(cfg); mailgunSender != nil {
		sinks = append(sinks, mailgunSender)
	}

	if cfg.DBUrl == "" {
		return sinks, cleanup, nil
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		return nil, cleanup, fmt.Errorf("connect to database: %w", err)
	}

	leadStore := postgres.NewLeadStore(dbPool)
	if err := leadStore.EnsureSchema(ctx); err != nil {
		dbPool.Close()
		return nil, cleanup, fmt.Errorf("prepare lead store: %w", err)
	}

	checks["database"] = dbPool.Ping
	return append(sinks, leadStore), dbPool.Close, nil
}
