package model

import (
	"strconv"
	"strings"
)

// Direction is the orientation of a clue on the grid.
type Direction string

const (
	DirectionAcross  Direction = "across"
	DirectionDown    Direction = "down"
	DirectionUnknown Direction = "unknown" // only valid on tail descriptors
)

// IsValid reports whether d is a placeable direction (across or down).
func (d Direction) IsValid() bool {
	return d == DirectionAcross || d == DirectionDown
}

// Suffix returns the clue id suffix for the direction: "a", "d", or "".
func (d Direction) Suffix() string {
	switch d {
	case DirectionAcross:
		return "a"
	case DirectionDown:
		return "d"
	default:
		return ""
	}
}

// Step returns the grid delta between consecutive letters.
func (d Direction) Step() (dx, dy int) {
	if d == DirectionDown {
		return 0, 1
	}
	return 1, 0
}

// Terminator marks the end of a word inside a multi-word answer.
type Terminator string

const (
	TerminatorNone   Terminator = ""
	TerminatorComma  Terminator = ","
	TerminatorHyphen Terminator = "-"
	TerminatorPeriod Terminator = "."
	TerminatorSpace  Terminator = " "
)

// IsWordBreak reports whether the terminator separates distinct words, as
// opposed to joining a compound (hyphen) or being absent.
func (t Terminator) IsWordBreak() bool {
	return t == TerminatorComma || t == TerminatorPeriod || t == TerminatorSpace
}

// FormatLength renders word lengths in length notation, e.g. "5,3-4". The
// final word's terminator is kept only when it is a period, so acronyms
// such as "1.1.1." keep their shape.
func FormatLength(lengths []int, terminators []Terminator) string {
	var sb strings.Builder
	for i, n := range lengths {
		sb.WriteString(strconv.Itoa(n))
		if i >= len(terminators) {
			continue
		}
		if t := terminators[i]; i < len(lengths)-1 || t == TerminatorPeriod {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
