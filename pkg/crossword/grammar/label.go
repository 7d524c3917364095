package grammar

import (
	"strings"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/model"
)

// LabelSegment is one "<number>[a|d]" item of a label.
type LabelSegment struct {
	Number    int
	Direction model.Direction // DirectionUnknown when no suffix was given
}

// ParseLabel decomposes label text such as "9,3a,4d,6" into segments. The
// first segment is the clue's own head; the rest are tail descriptors.
//
// Segments are separated by runs of non-alphanumeric characters. Anything
// left over once no further segment can be read is an error.
func ParseLabel(text string) ([]LabelSegment, error) {
	s := strings.TrimFunc(text, isSpace)

	var segments []LabelSegment
	for len(s) > 0 {
		n, width, ok := scanNumber(s)
		if !ok {
			break
		}
		s = s[width:]

		dir := model.DirectionUnknown
		if len(s) > 0 {
			switch s[0] {
			case 'a':
				dir = model.DirectionAcross
				s = s[1:]
			case 'd':
				dir = model.DirectionDown
				s = s[1:]
			}
		}

		i := 0
		for i < len(s) && !isAlnum(s[i]) {
			i++
		}
		s = s[i:]

		segments = append(segments, LabelSegment{Number: n, Direction: dir})
	}

	if len(segments) == 0 {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeGrammar,
			"label %q does not start with a clue number", text).
			WithSuggestion(`Start the clue with its number, e.g. "3." or "9,3a,4d."`)
	}
	if s != "" {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeGrammar,
			"label %q has unparsed residue %q", text, s)
	}
	return segments, nil
}
