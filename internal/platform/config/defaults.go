package config

const (
	defaultBreakerMaxFailures = 3
	defaultBreakerHalfOpen    = 1
	defaultFadeFrameRate      = 60
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "screennav",

		"navigator.transition_timeout":      "5s",
		"navigator.overlap_policy":          OverlapQueue,
		"navigator.strict":                  true,
		"navigator.restore_on_failure":      false,
		"navigator.breaker.max_failures":    defaultBreakerMaxFailures,
		"navigator.breaker.timeout":         "30s",
		"navigator.breaker.half_open_limit": defaultBreakerHalfOpen,
		"navigator.fade.duration":           "500ms",
		"navigator.fade.frame_rate":         defaultFadeFrameRate,
	}
}
