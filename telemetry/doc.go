// Package telemetry is the combined-initialization entry point for tracing
// and metrics.
//
//	cfg := config.FromEnv()
//	t := telemetry.Init(ctx, cfg)
//	defer t.Shutdown(ctx)
//
// Each subsystem initializes independently; a failure in one degrades that
// subsystem and never blocks the other or application startup. Callers who
// want only one subsystem can use the tracing and metrics packages directly.
package telemetry
