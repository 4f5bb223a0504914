package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simpliexteriors/site-api/internal/analytics"
	"github.com/simpliexteriors/site-api/internal/api/router"
	"github.com/simpliexteriors/site-api/internal/blog"
	appconfig "github.com/simpliexteriors/site-api/internal/config"
	"github.com/simpliexteriors/site-api/internal/crm"
	"github.com/simpliexteriors/site-api/internal/intake"
	"github.com/simpliexteriors/site-api/internal/notify"
	"github.com/simpliexteriors/site-api/internal/observability/metrics"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting simpli site API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	leadMetrics := metrics.NewLeadMetrics(registry)

	// Email channel; a missing API key disables it rather than failing
	// startup so the rest of the site keeps working.
	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	} else {
		logger.Warn("SENDGRID_API_KEY not set, email notifications disabled")
	}

	notifySvc := notify.NewService(emailSender, notify.Config{
		BusinessEmail: cfg.BusinessEmail,
		BusinessPhone: cfg.BusinessPhone,
		SiteURL:       cfg.PublicBaseURL,
		SendTimeout:   cfg.OutboundTimeout,
	}, logger, leadMetrics)

	crmClient := crm.NewClient(crm.ClientConfig{
		WebhookURL: cfg.GHLWebhookURL,
		APIKey:     cfg.GHLAPIKey,
		Timeout:    cfg.OutboundTimeout,
	}, logger, crm.WithMetrics(leadMetrics))
	if !crmClient.Configured() {
		logger.Warn("GHL_WEBHOOK_URL not set, CRM submissions disabled")
	}

	intakeSvc := intake.NewService(notifySvc, crmClient, logger, leadMetrics)

	blogStore := blog.NewFileStore(cfg.BlogDataFile, logger)

	// Setup router
	routerCfg := &router.Config{
		Logger:             logger,
		IntakeHandler:      intake.NewHandler(intakeSvc, emailSender != nil, logger),
		BlogHandler:        blog.NewHandler(blogStore, logger),
		CRMHandler:         crm.NewHandler(crmClient, logger),
		AnalyticsHandler:   analytics.NewHandler(logger, leadMetrics),
		AdminToken:         cfg.AdminToken,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		LeadRateLimit:      float64(cfg.LeadRatePerSecond),
		LeadRateBurst:      cfg.LeadRateBurst,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
