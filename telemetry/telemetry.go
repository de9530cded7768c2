package telemetry

import (
	"context"

	"github.com/sidewayslabs/sideways/config"
	"github.com/sidewayslabs/sideways/logger"
	"github.com/sidewayslabs/sideways/metrics"
	"github.com/sidewayslabs/sideways/tracing"
)

// Telemetry holds the handles that must be kept alive for the lifetime of
// the process and shut down on exit.
type Telemetry struct {
	// Tracer is the span export handle, nil when export is disabled or
	// initialization degraded to console-only logging.
	Tracer *tracing.Handle
}

// Init initializes tracing and metrics from the given configuration. It
// never fails: each subsystem's initialization error is logged as a warning
// and converted to a degraded mode (console-only logging, no-op metrics),
// because observability must never block application startup.
func Init(ctx context.Context, cfg config.Config) *Telemetry {
	logger.Info("telemetry: initializing", logger.Fields(
		"service", cfg.Service,
		"environment", cfg.Environment,
	))

	t := &Telemetry{}

	if cfg.TracingEnabled {
		handle, err := tracing.InitExport(ctx, cfg)
		if err != nil {
			logger.Warn("telemetry: trace export unavailable, falling back to console logging",
				logger.Fields("error", err.Error()))
			if consoleErr := tracing.InitConsole(cfg); consoleErr != nil {
				logger.Warn("telemetry: console subscriber not installed",
					logger.Fields("error", consoleErr.Error()))
			}
		} else {
			t.Tracer = handle
			logger.Info("telemetry: trace export initialized")
		}
	} else {
		logger.Info("telemetry: trace export disabled")
		if err := tracing.InitConsole(cfg); err != nil {
			logger.Warn("telemetry: console subscriber not installed",
				logger.Fields("error", err.Error()))
		}
	}

	if cfg.MetricsEnabled {
		if err := metrics.Init(cfg); err != nil {
			logger.Warn("telemetry: metrics unavailable, emission will be a no-op",
				logger.Fields("error", err.Error()))
		}
	} else {
		logger.Info("telemetry: metrics disabled")
	}

	return t
}

// Shutdown flushes and releases telemetry resources: pending exported spans
// through the tracer handle, and buffered metrics through the ambient
// client. Omitting it may lose buffered-but-unexported data.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var firstErr error
	if t.Tracer != nil {
		if err := t.Tracer.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if err := metrics.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
