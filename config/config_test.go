package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, key := range []string{"PORT", "LOG_LEVEL", "ALLOWED_ORIGINS", "CLUB_ASSIGNMENT", "SEED_DATA", "REQUEST_TIMEOUT", "MAIL_PROVIDER", "ANNOUNCE_TO", "OTEL_SERVICE_NAME", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "random", cfg.ClubAssignment)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "noop", cfg.Mail.Provider)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Empty(t, cfg.Mail.AnnounceTo)
	assert.Equal(t, "clubsessions", cfg.ServiceName)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://clubs.example.com/ ,")
	t.Setenv("CLUB_ASSIGNMENT", "preferred")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("ANNOUNCE_TO", "members@example.com")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://clubs.example.com/"}, cfg.AllowedOrigins)
	assert.Equal(t, "preferred", cfg.ClubAssignment)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"members@example.com"}, cfg.Mail.AnnounceTo)
	assert.Equal(t, "otel-collector:4317", cfg.OTLPEndpoint)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown club policy", "CLUB_ASSIGNMENT", "round-robin"},
		{"bad seed flag", "SEED_DATA", "maybe"},
		{"bad timeout", "REQUEST_TIMEOUT", "soon"},
		{"negative timeout", "REQUEST_TIMEOUT", "-1s"},
		{"ses without sender", "MAIL_PROVIDER", "ses"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			t.Setenv("MAIL_FROM_ADDRESS", "")
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &Config{Environment: "production", LogLevel: "warn"})

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "value", rec["key"])
}
