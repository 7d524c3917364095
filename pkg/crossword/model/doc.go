// Package model defines the in-memory representation of a compiled crossword.
//
// A Crossword owns a width×height grid of Cells and an ordered slice of
// Clues. Relations between entities are expressed as ClueRef indices into
// Crossword.Clues rather than pointers, so a model has no reference cycles
// and can be encoded with encoding/json as-is.
//
// # Core Types
//
// Crossword: Grid dimensions, cells indexed [x][y], clues, and light cells
//
// Clue: A compiled clue segment with its answer buffers and chain links
//
// Cell: A grid square with the clues crossing it and its letters
//
// Buffer: A fixed-length letter buffer where a space means blank
//
// # Multi-Segment Clues
//
// A clue whose answer spans several grid-disjoint segments is represented
// as a chain. The head segment lists its siblings in TailSegments; every
// segment points at the head through Head and at its neighbours through
// Previous and Next. FlatCells and LengthText are populated on the head
// only:
//
//	for _, head := range cw.AcrossHeads() {
//	    for _, seg := range cw.Chain(head) {
//	        fmt.Println(seg.ID, seg.SegmentLength)
//	    }
//	    fmt.Println("total:", head.LengthText)
//	}
package model
