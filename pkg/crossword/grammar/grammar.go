package grammar

import (
	"strings"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
)

// Pattern is the shape every clue string must have.
const Pattern = "LabelText.ClueText(LengthText)"

// Parts holds the three raw groups of a clue string.
type Parts struct {
	Label    string // before the first '.'
	ClueText string // between that '.' and the last '('
	Length   string // between that '(' and the trailing ')'
}

// Split divides a clue string into its label, clue text, and length groups.
//
// The label ends at the first '.', so periods later in the clue text are
// kept ("3. Mr. Smith (5)" has clue text " Mr. Smith "). The length group
// starts at the last '(', so parentheses earlier in the clue text are kept
// as well.
func Split(clue string) (Parts, error) {
	s := strings.TrimRightFunc(clue, isSpace)

	dot := strings.IndexByte(s, '.')
	open := strings.LastIndexByte(s, '(')
	if dot <= 0 || open < dot || !strings.HasSuffix(s, ")") {
		return Parts{}, xwErrors.Newf(xwErrors.ErrorTypeGrammar,
			"clue %q does not match %s", clue, Pattern).
			WithSuggestion(xwErrors.SuggestClueShape())
	}

	return Parts{
		Label:    s[:dot],
		ClueText: s[dot+1 : open],
		Length:   s[open+1 : len(s)-1],
	}, nil
}

// ParseClueText trims surrounding whitespace from the clue text group. It
// never fails.
func ParseClueText(text string) string {
	return strings.TrimFunc(text, isSpace)
}

// Clue is a fully decomposed clue string.
type Clue struct {
	Segments []LabelSegment
	Text     string
	Words    []Word
}

// Parse splits a clue string and runs each sub-grammar over its group.
func Parse(clue string) (*Clue, error) {
	parts, err := Split(clue)
	if err != nil {
		return nil, err
	}

	segments, err := ParseLabel(parts.Label)
	if err != nil {
		return nil, err
	}

	words, err := ParseLength(parts.Length)
	if err != nil {
		return nil, err
	}

	return &Clue{
		Segments: segments,
		Text:     ParseClueText(parts.ClueText),
		Words:    words,
	}, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// scanNumber returns the decimal number at the start of s and the number of
// bytes it occupies. ok is false when s does not start with a digit or the
// value overflows.
func scanNumber(s string) (n, width int, ok bool) {
	for width < len(s) && isDigit(s[width]) {
		n = n*10 + int(s[width]-'0')
		if n > maxNumber {
			return 0, 0, false
		}
		width++
	}
	return n, width, width > 0
}

// maxNumber bounds clue numbers and word lengths; nothing on a real grid
// comes close.
const maxNumber = 1 << 20
