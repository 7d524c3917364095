package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for crossword compile spans.
const (
	AttrCompileID   = "xwc.compile_id"
	AttrSource      = "xwc.source"
	AttrGridWidth   = "xwc.grid.width"
	AttrGridHeight  = "xwc.grid.height"
	AttrAcrossClues = "xwc.clues.across"
	AttrDownClues   = "xwc.clues.down"
	AttrDirection   = "xwc.direction"
	AttrLightCells  = "xwc.light_cells"

	AttrErrorType    = "xwc.error.type"
	AttrErrorMessage = "error.message"
)

// SetSourceAttributes records which file a compile span is working on.
func SetSourceAttributes(span trace.Span, compileID, source string) {
	if compileID != "" {
		span.SetAttributes(attribute.String(AttrCompileID, compileID))
	}
	if source != "" {
		span.SetAttributes(attribute.String(AttrSource, source))
	}
}

// SetErrorAttributes records err on the span and marks the span failed.
//
//	SetErrorAttributes(span, err, "coherence")
func SetErrorAttributes(span trace.Span, err error, errorType string) {
	if err == nil {
		return
	}

	span.SetAttributes(
		attribute.Bool("error", true),
		attribute.String(AttrErrorType, errorType),
		attribute.String(AttrErrorMessage, err.Error()),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
