package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/screennav/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Navigator.TransitionTimeout != 10*time.Second {
		t.Errorf("Navigator.TransitionTimeout = %v, want 10s", cfg.Navigator.TransitionTimeout)
	}
	if cfg.Navigator.Fade.FrameRate != 30 {
		t.Errorf("Navigator.Fade.FrameRate = %d, want 30", cfg.Navigator.Fade.FrameRate)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Navigator.OverlapPolicy != config.OverlapReject {
		t.Errorf("Navigator.OverlapPolicy = %q, want %q", cfg.Navigator.OverlapPolicy, config.OverlapReject)
	}
}

func TestLoad_EveryShippedProfile(t *testing.T) {
	t.Chdir("../../..")

	for _, profile := range config.Profiles {
		if _, err := config.Load(profile); err != nil {
			t.Errorf("Load(%q) error: %v", profile, err)
		}
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Navigator.OverlapPolicy != config.OverlapQueue {
		t.Errorf("Navigator.OverlapPolicy = %q, want %q (from base)", cfg.Navigator.OverlapPolicy, config.OverlapQueue)
	}
	if !cfg.Navigator.Strict {
		t.Error("Navigator.Strict = false, want true (from base)")
	}
	if cfg.Navigator.Breaker.MaxFailures != 3 {
		t.Errorf("Navigator.Breaker.MaxFailures = %d, want 3 (from base)", cfg.Navigator.Breaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (env override)", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_NAVIGATOR_TRANSITION_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Navigator.TransitionTimeout != want {
		t.Errorf("Navigator.TransitionTimeout = %v, want %v (env override)", cfg.Navigator.TransitionTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_NAVIGATOR_BREAKER_MAX_FAILURES", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Navigator.Breaker.MaxFailures != 7 {
		t.Errorf("Navigator.Breaker.MaxFailures = %d, want 7 (env override)", cfg.Navigator.Breaker.MaxFailures)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidOverlapPolicy(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Navigator.OverlapPolicy = "drop"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for unknown overlap policy")
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Navigator.TransitionTimeout = -time.Second

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for negative transition timeout")
	}
}

func TestValidate_ZeroTimeoutAllowed(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Navigator.TransitionTimeout = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil for disabled timeout", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_FadeAndBreaker(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Navigator.Fade.FrameRate = 0
	cfg.Navigator.Breaker.MaxFailures = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for zero frame rate and max failures")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "screennav",
		},
		Navigator: config.NavigatorConfig{
			TransitionTimeout: 5 * time.Second,
			OverlapPolicy:     config.OverlapQueue,
			Strict:            true,
			Breaker: config.BreakerConfig{
				MaxFailures:   3,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			Fade: config.FadeConfig{
				Duration:  500 * time.Millisecond,
				FrameRate: 60,
			},
		},
	}
}
