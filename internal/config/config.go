package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string

	// Admin access to blog mutation endpoints
	AdminToken string

	// SendGrid Email Configuration
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	BusinessEmail     string
	BusinessPhone     string

	// GoHighLevel CRM Configuration
	GHLWebhookURL string
	GHLAPIKey     string

	// Blog content store
	BlogDataFile string

	// HTTP hardening
	CORSAllowedOrigins []string
	OutboundTimeout    time.Duration
	LeadRatePerSecond  int
	LeadRateBurst      int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "https://simpliexteriors.com"),

		AdminToken: getEnv("ADMIN_TOKEN", "simpli-admin-2025"),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "noreply@gosimpliut.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Simpli Roofing & Exteriors"),
		BusinessEmail:     getEnv("BUSINESS_EMAIL", "info@gosimpliut.com"),
		BusinessPhone:     getEnv("BUSINESS_PHONE", "435-922-4340"),

		GHLWebhookURL: getEnv("GHL_WEBHOOK_URL", ""),
		GHLAPIKey:     getEnv("GHL_API_KEY", ""),

		BlogDataFile: getEnv("BLOG_DATA_FILE", "data/blog-posts.json"),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
		OutboundTimeout:    getEnvAsDuration("OUTBOUND_TIMEOUT", 10*time.Second),
		LeadRatePerSecond:  getEnvAsInt("LEAD_RATE_PER_SECOND", 1),
		LeadRateBurst:      getEnvAsInt("LEAD_RATE_BURST", 5),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated environment variable into trimmed values.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
