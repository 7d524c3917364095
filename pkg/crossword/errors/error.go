package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"mercator-hq/crossword/pkg/crossword/model"
)

// ErrorType categorizes the type of error encountered while loading or
// compiling a crossword definition.
type ErrorType string

const (
	ErrorTypeStructural     ErrorType = "structural"      // Invalid or missing grid bounds
	ErrorTypeSchema         ErrorType = "schema"          // Missing, mistyped, or unexpected clue fields
	ErrorTypeGrammar        ErrorType = "grammar"         // Clue string does not match LabelText.ClueText(LengthText)
	ErrorTypeBounds         ErrorType = "bounds"          // Clue start or extent outside the grid
	ErrorTypeCoherence      ErrorType = "coherence"       // Intersecting clues disagree on a letter or label
	ErrorTypeLengthMismatch ErrorType = "length_mismatch" // Solution/revealed length differs from the clue length
	ErrorTypeReference      ErrorType = "reference"       // Unresolvable or ambiguous multi-segment reference
	ErrorTypeSyntax         ErrorType = "syntax"          // YAML/JSON syntax error
	ErrorTypeIO             ErrorType = "io"              // File I/O error
)

// Error represents a compile error with the offending clue, its position
// in the definition, and an optional suggestion.
type Error struct {
	Type       ErrorType      // Category of error
	Message    string         // Error message
	Clue       string         // Clue id, when the error concerns a single clue
	Path       string         // Definition path, e.g. "acrossClues[2].clue"
	Location   model.Location // Source location (file, line, column)
	Context    string         // Surrounding source lines
	Suggestion string         // Suggested fix (optional)
}

// Error implements the error interface.
// The first line is "[type] message"; location, context and suggestion
// follow on their own lines when present.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location.String()))
	} else if e.Path != "" {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Path))
	}

	if e.Context != "" {
		sb.WriteString("\n  |\n")
		sb.WriteString(strings.TrimRight(e.Context, "\n"))
		sb.WriteString("\n  |")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}

	return sb.String()
}

// Newf creates an error of the given type with a formatted message.
func Newf(errType ErrorType, format string, args ...any) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithClue sets the clue id and returns the error.
func (e *Error) WithClue(id string) *Error {
	e.Clue = id
	return e
}

// WithPath sets the definition path and returns the error.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithSuggestion sets the suggestion and returns the error.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// PrefixPath prepends prefix to the error path. A path beginning with an
// index ("[2].x") is joined without a dot.
func (e *Error) PrefixPath(prefix string) *Error {
	switch {
	case prefix == "":
	case e.Path == "":
		e.Path = prefix
	case strings.HasPrefix(e.Path, "["):
		e.Path = prefix + e.Path
	default:
		e.Path = prefix + "." + e.Path
	}
	return e
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsType reports whether err's chain contains an *Error of the given type.
func IsType(err error, errType ErrorType) bool {
	e, ok := As(err)
	return ok && e.Type == errType
}

// TypeOf returns the ErrorType of err, or "" when err is not an *Error.
func TypeOf(err error) ErrorType {
	if e, ok := As(err); ok {
		return e.Type
	}
	return ""
}
