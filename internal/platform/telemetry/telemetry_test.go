package telemetry_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/screennav/internal/platform/telemetry"
)

// Init* register global providers, so these tests do not run in parallel.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unsupported", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, "screennav-test", tt.exporter, tt.endpoint, telemetry.WithWriter(&bytes.Buffer{}))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("InitTracer(%q) error = nil, want error", tt.exporter)
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer(%q) error = %v", tt.exporter, err)
			}
			// No collector runs in unit tests, so shutdown errors are ignored.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })
		})
	}
}

func TestInitTracer_SetsGlobalPropagator(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "screennav-test", telemetry.ExporterStdout, "", telemetry.WithWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("InitTracer error = %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	fields := otel.GetTextMapPropagator().Fields()
	want := map[string]bool{"traceparent": false, "baggage": false}
	for _, f := range fields {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("global propagator fields = %v, missing %q", fields, f)
		}
	}
}

func TestInitTracer_StdoutWritesToWriter(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	tp, err := telemetry.InitTracer(ctx, "screennav-test", telemetry.ExporterStdout, "", telemetry.WithWriter(&buf))
	if err != nil {
		t.Fatalf("InitTracer error = %v", err)
	}

	_, span := tp.Tracer("navigator").Start(ctx, "Navigator.Open")
	span.End()

	if err := tp.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown error = %v", err)
	}
	if !strings.Contains(buf.String(), "Navigator.Open") {
		t.Errorf("exporter output = %q, want the span name", buf.String())
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unsupported", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, "screennav-test", tt.exporter, tt.endpoint, telemetry.WithWriter(&bytes.Buffer{}))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("InitMeter(%q) error = nil, want error", tt.exporter)
				}
				return
			}
			if err != nil {
				t.Fatalf("InitMeter(%q) error = %v", tt.exporter, err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })
		})
	}
}

func TestNewMetrics(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "screennav-test", telemetry.ExporterStdout, "", telemetry.WithWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("InitMeter error = %v", err)
	}
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "screennav-test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	if metrics.NavigationDuration == nil {
		t.Error("NavigationDuration is nil")
	}
	if metrics.NavigationTotal == nil {
		t.Error("NavigationTotal is nil")
	}
	if metrics.TransitionFallbackTotal == nil {
		t.Error("TransitionFallbackTotal is nil")
	}
	if metrics.StackDepth == nil {
		t.Error("StackDepth is nil")
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "screennav-test")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}

	// Recording against noop instruments must not panic.
	metrics.NavigationTotal.Add(context.Background(), 1)
	metrics.StackDepth.Record(context.Background(), 3)
}
