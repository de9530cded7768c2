package tracing

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// newTestExportPipeline builds an export sink over an in-memory exporter.
func newTestExportPipeline(t *testing.T) (Sink, *tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewExportSink(tp.Tracer("test")), exporter, tp
}

func TestExportSinkForwardsAdmittedSpans(t *testing.T) {
	resetSubscriber(t)
	sink, exporter, _ := newTestExportPipeline(t)
	if err := install(NewSubscriber(sink)); err != nil {
		t.Fatal(err)
	}

	_, span := Start(context.Background(), "ProcessOrder", WithTarget("orders"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 exported span, got %d", len(spans))
	}
	if spans[0].Name != "ProcessOrder" {
		t.Errorf("expected span name 'ProcessOrder', got %q", spans[0].Name)
	}
}

func TestExportSinkRejectsHealthChecks(t *testing.T) {
	resetSubscriber(t)
	sink, exporter, _ := newTestExportPipeline(t)
	if err := install(NewSubscriber(sink)); err != nil {
		t.Fatal(err)
	}

	_, span := Start(context.Background(), "DoHealthCheck", WithTarget("orders"))
	span.End()
	_, span = Start(context.Background(), "serve", WithTarget("grpc.health.v1.Health"))
	span.End()

	if got := len(exporter.GetSpans()); got != 0 {
		t.Errorf("expected no exported health-check spans, got %d", got)
	}
}

func TestExportSinkSeverityFloor(t *testing.T) {
	resetSubscriber(t)
	sink, exporter, _ := newTestExportPipeline(t)
	if err := install(NewSubscriber(sink)); err != nil {
		t.Fatal(err)
	}

	// debug is below the hard info floor regardless of the user filter
	_, span := Start(context.Background(), "trace-me-not", WithLevel(zerolog.DebugLevel))
	span.End()
	_, span = Start(context.Background(), "trace-me", WithLevel(zerolog.InfoLevel))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 || spans[0].Name != "trace-me" {
		t.Errorf("expected only the info span to be exported, got %+v", spanNames(spans))
	}
}

func TestExportSinkRecordsError(t *testing.T) {
	resetSubscriber(t)
	sink, exporter, _ := newTestExportPipeline(t)
	if err := install(NewSubscriber(sink)); err != nil {
		t.Fatal(err)
	}

	_, span := Start(context.Background(), "ProcessOrder")
	span.RecordError(fmt.Errorf("payment declined"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 exported span, got %d", len(spans))
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected an exception event on the exported span")
	}
}

func TestConsoleLayerUnaffectedByHealthFilter(t *testing.T) {
	resetSubscriber(t)

	console := &recordingSink{} // stands in for the console layer: no health rule
	export, exporter, _ := newTestExportPipeline(t)
	if err := install(NewSubscriber(console, export)); err != nil {
		t.Fatal(err)
	}

	_, span := Start(context.Background(), "DoHealthCheck", WithTarget("probes"))
	span.End()

	if len(console.ended) != 1 {
		t.Errorf("expected the console layer to receive the health-check span, got %d", len(console.ended))
	}
	if got := len(exporter.GetSpans()); got != 0 {
		t.Errorf("expected the export layer to suppress it, got %d", got)
	}
}

func TestEndpointFromAgentURL(t *testing.T) {
	tests := []struct {
		in           string
		wantEndpoint string
		wantInsecure bool
	}{
		{"http://localhost:8126", "localhost:8126", true},
		{"https://agent.internal:8126", "agent.internal:8126", false},
		{"localhost:8126", "localhost:8126", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			endpoint, insecure := endpointFromAgentURL(tc.in)
			if endpoint != tc.wantEndpoint || insecure != tc.wantInsecure {
				t.Errorf("got (%q, %v), want (%q, %v)", endpoint, insecure, tc.wantEndpoint, tc.wantInsecure)
			}
		})
	}
}

func spanNames(spans tracetest.SpanStubs) []string {
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name
	}
	return names
}
