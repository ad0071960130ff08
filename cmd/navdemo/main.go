// Package main is a terminal host for the screen navigator. It wires all
// dependencies using samber/do v2, registers a bundle of demo screens and runs
// a bubbletea program that drives navigation from the keyboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/screennav/internal/app/navigator"
	"github.com/jsamuelsen11/screennav/internal/app/registry"
	"github.com/jsamuelsen11/screennav/internal/app/stack"
	"github.com/jsamuelsen11/screennav/internal/app/transition"
	"github.com/jsamuelsen11/screennav/internal/domain"
	"github.com/jsamuelsen11/screennav/internal/platform/config"
	"github.com/jsamuelsen11/screennav/internal/platform/health"
	"github.com/jsamuelsen11/screennav/internal/platform/logging"
	"github.com/jsamuelsen11/screennav/internal/platform/telemetry"
	"github.com/jsamuelsen11/screennav/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	otelShutdownTimeout = 5 * time.Second
	logFileName         = "navdemo.log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return fmt.Errorf("APP_PROFILE environment variable is required (one of %s)", strings.Join(config.Profiles, ", "))
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The terminal belongs to the UI; logs go to a file.
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg, telemetry.WithWriter(logFile))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// Fade frames are forwarded to the program once it exists.
	var program *tea.Program
	onFrame := func(opacity float64) {
		if program != nil {
			program.Send(frameMsg(opacity))
		}
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, onFrame)

	// Resolve the navigator (eagerly wires the full graph).
	nav, err := do.Invoke[*navigator.Navigator](injector)
	if err != nil {
		return fmt.Errorf("resolving navigator: %w", err)
	}

	// Register health checkers after the graph is wired.
	healthRegistry := do.MustInvoke[*health.Registry](injector)
	healthRegistry.Register(nav)

	bundle := demoBundle(logger)
	if err := nav.LoadBundle(bundle); err != nil {
		return fmt.Errorf("loading screens: %w", err)
	}

	program = tea.NewProgram(
		newModel(ctx, do.MustInvoke[ports.Navigator](injector), healthRegistry, bundle),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	logger.Info("navigator demo started", slog.String("profile", profile))

	_, runErr := program.Run()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Info("received shutdown signal")
		runErr = nil
	}

	// Abort a transition that might still be running.
	stop()
	nav.UnloadBundle(bundle)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	if runErr != nil {
		return fmt.Errorf("running program: %w", runErr)
	}
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config, opts ...telemetry.Option) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
		opts...,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(
	injector *do.RootScope,
	cfg *config.Config,
	logger *slog.Logger,
	onFrame transition.FrameFunc,
) {
	do.Provide(injector, func(_ do.Injector) (*registry.Registry, error) {
		return registry.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*stack.Stack, error) {
		return stack.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (domain.TransitionFactory, error) {
		return transition.NewFadeFactory(cfg.Navigator.Fade, onFrame), nil
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*navigator.Navigator, error) {
		reg := do.MustInvoke[*registry.Registry](i)
		st := do.MustInvoke[*stack.Stack](i)
		tf := do.MustInvoke[domain.TransitionFactory](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return navigator.New(&cfg.Navigator, reg, st, tf, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Navigator, error) {
		return do.MustInvoke[*navigator.Navigator](i), nil
	})
}
