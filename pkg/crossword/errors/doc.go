// Package errors provides the error taxonomy for crossword compilation.
//
// Every failure is an *Error carrying an ErrorType, a message naming the
// offending clue, coordinate or value, and optionally the definition path,
// the source location and a suggestion:
//
//	[coherence] clue 1d conflicts with clue 1a at (1,1): answer 'P' vs 'A'
//	  --> puzzle.yaml:12:7
//	  |
//	-> 12 |   - x: 1
//	      |       ^
//	  |
//
// # Error Types
//
//   - structural: invalid or missing grid dimensions
//   - schema: missing, mistyped, or unexpected clue fields
//   - grammar: clue string does not match LabelText.ClueText(LengthText)
//   - bounds: clue starts or extends outside the grid
//   - coherence: intersecting clues disagree on a letter or a label
//   - length_mismatch: solution or revealed text has the wrong length
//   - reference: a multi-segment reference cannot be resolved
//   - syntax, io: the definition file could not be read or parsed
//
// All errors are fatal to the compile that raised them. Use IsType or As
// to inspect them:
//
//	if xwErrors.IsType(err, xwErrors.ErrorTypeBounds) {
//	    // ...
//	}
package errors
