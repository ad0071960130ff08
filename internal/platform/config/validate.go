package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Navigator.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}

func (n *NavigatorConfig) validate() error {
	var errs []error

	if n.TransitionTimeout < 0 {
		errs = append(errs, fmt.Errorf("navigator.transition_timeout must not be negative, got %s", n.TransitionTimeout))
	}

	switch n.OverlapPolicy {
	case OverlapQueue, OverlapReject:
		// Valid policies.
	default:
		errs = append(errs, fmt.Errorf("navigator.overlap_policy must be one of: queue, reject; got %q", n.OverlapPolicy))
	}

	if n.Breaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("navigator.breaker.max_failures must be >= 1, got %d", n.Breaker.MaxFailures))
	}
	if n.Breaker.Timeout <= 0 {
		errs = append(errs, errors.New("navigator.breaker.timeout must be positive"))
	}
	if n.Breaker.HalfOpenLimit < 1 {
		errs = append(errs, fmt.Errorf("navigator.breaker.half_open_limit must be >= 1, got %d",
			n.Breaker.HalfOpenLimit))
	}

	if n.Fade.Duration <= 0 {
		errs = append(errs, errors.New("navigator.fade.duration must be positive"))
	}
	if n.Fade.FrameRate < 1 {
		errs = append(errs, fmt.Errorf("navigator.fade.frame_rate must be >= 1, got %d", n.Fade.FrameRate))
	}

	return errors.Join(errs...)
}
