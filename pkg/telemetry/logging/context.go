package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Context keys for common log fields.
type contextKey string

const (
	// CompileIDKey is the context key for compile ids.
	CompileIDKey contextKey = "compile_id"

	// SourceKey is the context key for the definition file being compiled.
	SourceKey contextKey = "source"
)

// WithCompileID adds a compile id to the context.
func WithCompileID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CompileIDKey, id)
}

// GetCompileID retrieves the compile id from the context.
func GetCompileID(ctx context.Context) string {
	if id, ok := ctx.Value(CompileIDKey).(string); ok {
		return id
	}
	return ""
}

// WithSource adds the definition file path to the context.
func WithSource(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, SourceKey, path)
}

// GetSource retrieves the definition file path from the context.
func GetSource(ctx context.Context) string {
	if path, ok := ctx.Value(SourceKey).(string); ok {
		return path
	}
	return ""
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if id := GetCompileID(ctx); id != "" {
		fields = append(fields, "compile_id", id)
	}
	if path := GetSource(ctx); path != "" {
		fields = append(fields, "source", path)
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	return fields
}

// FromContext returns logger annotated with the compile id, source path,
// and trace identifiers found in ctx.
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	fields := extractContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}
