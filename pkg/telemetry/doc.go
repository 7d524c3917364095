// Package telemetry groups the observability packages used by xwc.
//
// # Components
//
//   - logging: slog logger construction and context fields (compile id, source)
//   - metrics: Prometheus compile and watch metrics
//   - tracing: OpenTelemetry spans for compile phases, exported over OTLP
//   - health: liveness and readiness endpoints for xwc watch
//
// The compiler never depends on these packages directly for output: it
// takes a logger, a compiler.Recorder and a trace.Tracer as options, all of
// which default to no-ops.
package telemetry
