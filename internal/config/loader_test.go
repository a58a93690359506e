package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "3001")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")
	t.Setenv("NOTIFY_APP_NAME", "notificable")
	t.Setenv("NOTIFY_BACKEND", "auto")
	t.Setenv("NOTIFY_DISPATCH_TIMEOUT", "5s")
	t.Setenv("NOTIFY_MAX_IN_FLIGHT", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:3001", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.Security.CorsAllowedOrigins)
	assert.Equal(t, "notificable", cfg.Notify.AppName)
	assert.Equal(t, "auto", cfg.Notify.Backend)
	assert.Equal(t, 5*time.Second, cfg.Notify.DispatchTimeout)
	assert.Equal(t, int64(4), cfg.Notify.MaxInFlight)
	assert.Equal(t, "dev", cfg.Build.Version)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("NOTIFY_BACKEND", "beeep")
	t.Setenv("NOTIFY_DISPATCH_TIMEOUT", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		cfg.Security.CorsAllowedOrigins,
	)
	assert.Equal(t, "beeep", cfg.Notify.Backend)
	assert.Equal(t, 250*time.Millisecond, cfg.Notify.DispatchTimeout)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		typ   ConfigErrorType
	}{
		{name: "unknown environment", key: "APP_ENV", value: "staging", typ: ErrValidation},
		{name: "unknown backend", key: "NOTIFY_BACKEND", value: "growl", typ: ErrValidation},
		{name: "unknown log level", key: "LOG_LEVEL", value: "loud", typ: ErrValidation},
		{name: "unparseable timeout", key: "NOTIFY_DISPATCH_TIMEOUT", value: "soon", typ: ErrParsing},
		{name: "zero in-flight cap", key: "NOTIFY_MAX_IN_FLIGHT", value: "0", typ: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.typ, cfgErr.Type)
		})
	}
}
