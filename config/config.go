package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	LogLevel       string
	AllowedOrigins []string
	RequestTimeout time.Duration

	// ClubAssignment names the policy choosing a club for new sessions:
	// "random", "first" or "preferred".
	ClubAssignment string
	SeedData       bool

	// ServiceName and OTLPEndpoint configure trace export. An empty
	// endpoint disables it.
	ServiceName  string
	OTLPEndpoint string

	Mail MailConfig
}

// MailConfig holds the session announcement settings.
type MailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	AnnounceTo            []string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file is usually absent and system environment
	// variables are used instead.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		ClubAssignment: getEnv("CLUB_ASSIGNMENT", "random"),
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "clubsessions"),
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Mail: MailConfig{
			Provider:           getEnv("MAIL_PROVIDER", "noop"),
			FromAddress:        os.Getenv("MAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("MAIL_FROM_NAME"),
			AnnounceTo:         splitList(os.Getenv("ANNOUNCE_TO")),
			AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	var err error
	if cfg.SeedData, err = getBool("SEED_DATA", true); err != nil {
		return nil, err
	}
	if cfg.Mail.SESInsecureSkipVerify, err = getBool("SES_INSECURE_SKIP_VERIFY", false); err != nil {
		return nil, err
	}
	cfg.RequestTimeout = 5 * time.Second
	if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q", s)
		}
		cfg.RequestTimeout = d
	}

	switch cfg.ClubAssignment {
	case "random", "first", "preferred":
	default:
		return nil, fmt.Errorf("invalid CLUB_ASSIGNMENT %q: want random, first or preferred", cfg.ClubAssignment)
	}
	if cfg.Mail.Provider == "ses" && cfg.Mail.FromAddress == "" {
		return nil, fmt.Errorf("MAIL_FROM_ADDRESS is required when MAIL_PROVIDER=ses")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

// splitList splits a comma separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
