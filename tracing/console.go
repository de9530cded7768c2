package tracing

import (
	"context"
	"time"

	"github.com/sidewayslabs/sideways/logger"
)

// consoleSink writes spans and events through the console logger. It is
// unfiltered by the health-check rule: every record reaches it, subject
// only to the severity filter.
type consoleSink struct {
	log *logger.Logger
}

// NewConsoleSink creates the console layer over the given logger.
func NewConsoleSink(log *logger.Logger) Sink {
	return &consoleSink{log: log}
}

func (c *consoleSink) Accepts(md Metadata) bool {
	return c.log.Enabled(md.Target, md.Level)
}

func (c *consoleSink) SpanStart(ctx context.Context, md Metadata) (context.Context, SpanState) {
	// Spans are logged on completion, once the duration is known.
	return ctx, nil
}

func (c *consoleSink) SpanEnd(_ SpanState, md Metadata, duration time.Duration, err error) {
	fields := logger.Fields("span", md.Name, "duration_ms", duration.Milliseconds())
	if err != nil {
		fields["error"] = err.Error()
	}
	c.log.Log(md.Level, md.Target, "span completed", fields)
}

func (c *consoleSink) Event(_ context.Context, md Metadata, msg string, fields map[string]interface{}) {
	if fields == nil {
		c.log.Log(md.Level, md.Target, msg)
		return
	}
	c.log.Log(md.Level, md.Target, msg, fields)
}
