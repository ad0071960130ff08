// Package config provides configuration loading and validation for the
// navigator and its host application. Configuration is loaded from YAML files
// with environment variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Overlap policies for navigation requests issued while another one is in
// flight.
const (
	OverlapQueue  = "queue"
	OverlapReject = "reject"
)

// Profiles lists the profiles shipped in the configs directory.
var Profiles = []string{"local", "dev", "qa", "prod"}

// Config holds all configuration for the application.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Navigator NavigatorConfig `koanf:"navigator"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// NavigatorConfig holds screen navigator settings.
type NavigatorConfig struct {
	// TransitionTimeout bounds a single transition. Zero disables the timeout.
	TransitionTimeout time.Duration `koanf:"transition_timeout"`

	// OverlapPolicy is OverlapQueue or OverlapReject.
	OverlapPolicy string `koanf:"overlap_policy"`

	// Strict turns silent no-ops (unknown id, nil screen, closing an empty
	// stack, opening a screen that is already open) into returned errors.
	Strict bool `koanf:"strict"`

	// RestoreOnFailure re-enters the outgoing screen when a transition fails,
	// the same way a cancelled transition is rolled back.
	RestoreOnFailure bool `koanf:"restore_on_failure"`

	Breaker BreakerConfig `koanf:"breaker"`
	Fade    FadeConfig    `koanf:"fade"`
}

// BreakerConfig holds the transition circuit breaker settings.
type BreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// FadeConfig holds settings for the default fade transition.
type FadeConfig struct {
	Duration  time.Duration `koanf:"duration"`
	FrameRate int           `koanf:"frame_rate"`
}
