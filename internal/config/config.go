package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port                string
	LogLevel            string
	JWTSecret           string
	CBRURL              string
	CBRMargin           float64
	RateCacheTTL        time.Duration
	RateRefreshSchedule string
	SearchUpperBound    int64
	PolicyFile          string
	SMTPHost            string
	SMTPPort            string
	SMTPUsername        string
	SMTPPassword        string
	SenderEmail         string
	Policy              Policy
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	// A missing .env is fine, real environment variables take over.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		CBRURL:              getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		RateRefreshSchedule: getEnv("RATE_REFRESH_SCHEDULE", "@every 1h"),
		PolicyFile:          getEnv("POLICY_FILE", ""),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnv("SMTP_PORT", "587"),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		SenderEmail:         getEnv("SENDER_EMAIL", ""),
	}

	var err error
	if cfg.CBRMargin, err = strconv.ParseFloat(getEnv("CBR_MARGIN", "5"), 64); err != nil {
		return nil, fmt.Errorf("invalid CBR_MARGIN value: %w", err)
	}
	if cfg.RateCacheTTL, err = time.ParseDuration(getEnv("RATE_CACHE_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("invalid RATE_CACHE_TTL value: %w", err)
	}
	if cfg.SearchUpperBound, err = strconv.ParseInt(getEnv("SEARCH_UPPER_BOUND", "10000000"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid SEARCH_UPPER_BOUND value: %w", err)
	}
	if cfg.SearchUpperBound <= 1 {
		return nil, fmt.Errorf("SEARCH_UPPER_BOUND must be greater than 1")
	}

	cfg.Policy = DefaultPolicy()
	if cfg.PolicyFile != "" {
		if cfg.Policy, err = LoadPolicy(cfg.PolicyFile); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// MailEnabled reports whether SMTP settings are complete enough to send mail
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
