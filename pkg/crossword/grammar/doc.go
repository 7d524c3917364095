// Package grammar parses clue strings of the form
// "LabelText.ClueText(LengthText)".
//
// Split isolates the three groups. Each group then has its own small
// grammar, implemented as a character-class scanner that consumes leading
// tokens until nothing more matches:
//
//   - label: "<number>[a|d]" segments separated by non-alphanumerics, e.g.
//     "9,3a,4d,6". The first segment is the head of the clue; the rest
//     refer to the other segments of a multi-segment answer.
//   - length: positive word lengths separated by runs of ",-." and
//     whitespace, e.g. "5,3-4" or "1.1.1.". Each run is kept as the
//     terminator of the word before it.
//   - clue text: surrounding whitespace is trimmed; never fails.
//
// A non-empty residue after a scanner stops is a grammar error.
package grammar
