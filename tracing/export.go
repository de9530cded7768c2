package tracing

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// exportMinLevel is the hard severity floor for the export layer, applied
// independently of the user-configured filter.
const exportMinLevel = zerolog.InfoLevel

// exportSink forwards admitted spans and events to the external trace
// backend through an OpenTelemetry tracer. Admission is gated by the
// health-check filter and the hard minimum-severity floor.
type exportSink struct {
	tracer trace.Tracer
}

// NewExportSink creates the export layer over the given tracer.
func NewExportSink(tracer trace.Tracer) Sink {
	return &exportSink{tracer: tracer}
}

func (e *exportSink) Accepts(md Metadata) bool {
	return md.Level >= exportMinLevel && admitsExport(md)
}

func (e *exportSink) SpanStart(ctx context.Context, md Metadata) (context.Context, SpanState) {
	opts := []trace.SpanStartOption{}
	if md.Target != "" {
		opts = append(opts, trace.WithAttributes(attribute.String("target", md.Target)))
	}
	ctx, span := e.tracer.Start(ctx, md.Name, opts...)
	return ctx, span
}

func (e *exportSink) SpanEnd(st SpanState, _ Metadata, _ time.Duration, err error) {
	span, ok := st.(trace.Span)
	if !ok {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (e *exportSink) Event(ctx context.Context, _ Metadata, msg string, fields map[string]interface{}) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	attrs := make([]attribute.KeyValue, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, attributeFromValue(k, v))
	}
	span.AddEvent(msg, trace.WithAttributes(attrs...))
}

func attributeFromValue(key string, value interface{}) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}

// endpointFromAgentURL splits a trace agent address into an OTLP endpoint
// host:port and an insecure flag. Addresses without a scheme are treated
// as plain host:port and exported insecurely.
func endpointFromAgentURL(agentURL string) (endpoint string, insecure bool) {
	u, err := url.Parse(agentURL)
	if err != nil || u.Host == "" {
		return agentURL, true
	}
	return u.Host, u.Scheme != "https"
}
