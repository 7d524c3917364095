// Package schema decodes an already-parsed crossword definition into typed
// values.
//
// The compiler does not read files. It accepts the generic value a YAML or
// JSON decoder produces (map[string]any, []any, scalars) and this package
// checks its shape before any clue is compiled:
//
//	width: 15
//	height: 15
//	acrossClues:
//	  - x: 1
//	    y: 1
//	    clue: "1. Red or green fruit (5)"
//	    solution: "APPLE"
//	downClues:
//	  - x: 1
//	    y: 1
//	    clue: "1. Cross (5)"
//
// Dimension problems are structural errors; problems inside a clue
// specification are schema errors. Error paths are relative to the
// definition root, e.g. "acrossClues[0].x".
package schema
