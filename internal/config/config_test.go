package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("GHL_WEBHOOK_URL", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.AdminToken != "simpli-admin-2025" {
		t.Fatalf("expected fallback admin token, got %s", cfg.AdminToken)
	}
	if cfg.GHLWebhookURL != "" {
		t.Fatalf("expected GHL webhook unset by default, got %s", cfg.GHLWebhookURL)
	}
	if cfg.BlogDataFile != "data/blog-posts.json" {
		t.Fatalf("expected default blog data file, got %s", cfg.BlogDataFile)
	}
	if cfg.OutboundTimeout != 10*time.Second {
		t.Fatalf("expected default outbound timeout, got %s", cfg.OutboundTimeout)
	}
	if cfg.PublicBaseURL != "https://simpliexteriors.com" {
		t.Fatalf("expected default public base URL, got %s", cfg.PublicBaseURL)
	}
	if cfg.LeadRatePerSecond != 1 || cfg.LeadRateBurst != 5 {
		t.Fatalf("expected default lead rate limits, got %d/%d", cfg.LeadRatePerSecond, cfg.LeadRateBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("ADMIN_TOKEN", "super-secret")
	t.Setenv("SENDGRID_API_KEY", "SG.test")
	t.Setenv("GHL_WEBHOOK_URL", "https://hooks.example.com/ghl")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://simpliexteriors.com, https://www.simpliexteriors.com")
	t.Setenv("OUTBOUND_TIMEOUT", "5s")
	t.Setenv("LEAD_RATE_PER_SECOND", "3")
	t.Setenv("LEAD_RATE_BURST", "10")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.AdminToken != "super-secret" {
		t.Fatalf("expected admin token override, got %s", cfg.AdminToken)
	}
	if cfg.SendGridAPIKey != "SG.test" {
		t.Fatalf("expected sendgrid key override, got %s", cfg.SendGridAPIKey)
	}
	if cfg.GHLWebhookURL != "https://hooks.example.com/ghl" {
		t.Fatalf("expected GHL webhook override, got %s", cfg.GHLWebhookURL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.simpliexteriors.com" {
		t.Fatalf("expected trimmed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.OutboundTimeout != 5*time.Second {
		t.Fatalf("expected outbound timeout override, got %s", cfg.OutboundTimeout)
	}
	if cfg.LeadRatePerSecond != 3 || cfg.LeadRateBurst != 10 {
		t.Fatalf("expected lead rate overrides, got %d/%d", cfg.LeadRatePerSecond, cfg.LeadRateBurst)
	}
}
