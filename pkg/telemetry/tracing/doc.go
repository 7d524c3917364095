// Package tracing wires OpenTelemetry tracing for the crossword tools.
//
// The compiler opens one span per compile and one child span per phase
// (clue compilation, reference validation, assembly, linking). This package
// configures where those spans go:
//
//	tracing:
//	  enabled: true
//	  exporter: otlp
//	  endpoint: localhost:4317
//	  sampler: always
//
// With tracing disabled, New returns a Tracer whose spans are no-ops.
package tracing
