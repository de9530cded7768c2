// Package tracing composes the layered span/event subscriber: a console
// layer that always receives every record, plus an optional export layer
// forwarding spans to the trace backend over OTLP.
//
// The export layer is additionally gated by a health-check filter and a
// hard info-level floor, so liveness-probe noise never leaves the process
// while staying visible on the console.
//
//	handle, err := tracing.InitExport(ctx, cfg)
//	defer handle.Shutdown(ctx)
//
//	ctx, span := tracing.Start(ctx, "ProcessOrder", tracing.WithTarget("orders"))
//	defer span.End()
package tracing
