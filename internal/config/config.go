// Package config defines the global configuration for the Notificable
// backend. Configuration is loaded once at process initialization and is
// immutable thereafter, following 12-Factor principles: values come from
// the OS environment, optionally seeded by a .env file. Any invalid value
// fails the process fast at startup.
package config

import "time"

// Config is the top-level configuration struct. It is populated once
// during process initialization and never modified. Sub-components receive
// only the specific config subsets they require.
type Config struct {
	// System Metadata
	Environment string `envconfig:"APP_ENV" default:"local" validate:"oneof=local dev prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Domain Configurations
	Server   ServerConfig
	Security SecurityConfig
	Notify   NotifyConfig

	// Build Metadata (injected via ldflags, not env)
	Build BuildInfo
}

// ServerConfig holds HTTP server bind configuration. The default binds the
// local loopback interface only; the notify endpoint triggers host-side
// effects and is not meant to be reachable from other machines.
type ServerConfig struct {
	Host string `envconfig:"HOST" default:"127.0.0.1"`
	Port string `envconfig:"PORT" default:"3001"`
}

// Addr returns the host:port bind address.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// SecurityConfig holds CORS settings.
type SecurityConfig struct {
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// NotifyConfig holds notification dispatch settings.
type NotifyConfig struct {
	// AppName is the identity shown by notification surfaces (freedesktop
	// app_name, toast AppID).
	AppName string `envconfig:"NOTIFY_APP_NAME" default:"notificable"`

	// Backend selects the dispatcher: "auto" for the platform-native one,
	// "beeep" for the cross-platform fallback, "none" to disable dispatch.
	Backend string `envconfig:"NOTIFY_BACKEND" default:"auto" validate:"oneof=auto beeep none"`

	// DispatchTimeout bounds each adapter call so a hung notification
	// transport cannot hang the request that triggered it.
	DispatchTimeout time.Duration `envconfig:"NOTIFY_DISPATCH_TIMEOUT" default:"5s" validate:"gt=0"`

	// MaxInFlight caps concurrent adapter calls.
	MaxInFlight int64 `envconfig:"NOTIFY_MAX_IN_FLIGHT" default:"4" validate:"gt=0"`
}

// BuildInfo holds build-time metadata injected via ldflags. These values
// are NOT populated from environment variables.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable
	// values into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
