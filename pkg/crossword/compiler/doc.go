// Package compiler turns decoded crossword definitions into crossword models.
//
// Compilation runs in four phases, each in its own trace span:
//
//  1. CompileClues parses every clue specification into a standalone clue.
//  2. ValidateReferences checks clue ids and multi-segment labels.
//  3. Assemble places clues on the grid and merges overlapping letters.
//  4. Link resolves tail segments into chains.
//
// A Compiler keeps no state between calls. The same definition always
// yields an equal model, and a failed compile never returns a partial one.
//
// Basic usage:
//
//	c := compiler.New(compiler.WithLogger(logger))
//	cw, err := c.Compile(ctx, raw)
//	if err != nil {
//	    return err
//	}
//	for _, clue := range cw.AcrossHeads() {
//	    fmt.Println(clue.ID, clue.ClueText, clue.LengthText)
//	}
package compiler
