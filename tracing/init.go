package tracing

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/sidewayslabs/sideways/config"
	"github.com/sidewayslabs/sideways/errors"
	"github.com/sidewayslabs/sideways/logger"
	"github.com/sidewayslabs/sideways/version"
)

// Handle keeps the span export pipeline alive. Shutdown flushes buffered,
// not-yet-exported span data and releases the exporter connection; it does
// not uninstall the subscriber or restore a prior one.
type Handle struct {
	tp *sdktrace.TracerProvider
}

// Shutdown flushes pending spans and closes the exporter.
func (h *Handle) Shutdown(ctx context.Context) error {
	return h.tp.Shutdown(ctx)
}

// TracerProvider returns the underlying SDK provider.
func (h *Handle) TracerProvider() *sdktrace.TracerProvider {
	return h.tp
}

// InitConsole installs a console-only subscriber, used when span export is
// disabled. The severity filter is resolved from the configuration with
// parse failures falling through to the "info" floor.
func InitConsole(cfg config.Config) error {
	log := logger.New(os.Stderr, logger.ResolveFilter(cfg))

	if err := install(NewSubscriber(NewConsoleSink(log))); err != nil {
		return err
	}
	logger.SetGlobal(log)
	return nil
}

// InitExport installs a subscriber composed of the console layer and the
// span export layer, and returns a Handle for shutdown. On installation
// failure the export pipeline is torn down before returning, and the
// previously installed subscriber remains active.
func InitExport(ctx context.Context, cfg config.Config) (*Handle, error) {
	log := logger.New(os.Stderr, logger.ResolveFilter(cfg))

	endpoint, insecure := endpointFromAgentURL(cfg.AgentURL)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExporterInit, "creating trace exporter", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExporterInit, "creating resource", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	sub := NewSubscriber(
		NewConsoleSink(log),
		NewExportSink(tp.Tracer(cfg.Service)),
	)
	if err := install(sub); err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	logger.SetGlobal(log)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing initialized", logger.Fields(
		"service", cfg.Service,
		"agent_url", cfg.AgentURL,
	))

	return &Handle{tp: tp}, nil
}

// newResource describes the process to the trace backend: service name,
// deployment environment, and a per-process runtime id.
func newResource(cfg config.Config) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.Service),
			semconv.ServiceVersion(version.String()),
			attribute.String("deployment.environment", cfg.Environment),
			attribute.String("runtime.id", uuid.NewString()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("merging resource: %w", err)
	}
	return res, nil
}
