package grammar

import (
	"strings"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/model"
)

// Word is one word length from the length group, with the separator run
// that followed it.
type Word struct {
	Length     int
	Separator  string           // raw separator run, "" after the final word
	Terminator model.Terminator // normalized separator
}

// ParseLength decomposes length text such as "5,3-4" or "1.1.1." into
// words. Lengths are positive integers separated by runs of ',', '-', '.'
// and whitespace.
func ParseLength(text string) ([]Word, error) {
	s := strings.TrimFunc(text, isSpace)

	var words []Word
	for len(s) > 0 {
		n, width, ok := scanNumber(s)
		if !ok {
			break
		}
		if n == 0 {
			return nil, xwErrors.Newf(xwErrors.ErrorTypeGrammar,
				"length %q contains a zero word length", text)
		}
		s = s[width:]

		i := 0
		for i < len(s) && isLengthSeparator(s[i]) {
			i++
		}
		sep := s[:i]
		s = s[i:]

		words = append(words, Word{
			Length:     n,
			Separator:  sep,
			Terminator: terminatorOf(sep),
		})
	}

	if len(words) == 0 {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeGrammar,
			"length %q does not start with a word length", text).
			WithSuggestion(`Give word lengths in the trailing parentheses, e.g. "(5)" or "(5,3-4)"`)
	}
	if s != "" {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeGrammar,
			"length %q has unparsed residue %q", text, s)
	}
	return words, nil
}

func isLengthSeparator(c byte) bool {
	switch c {
	case ',', '-', '.', ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// terminatorOf reduces a separator run to its first punctuation character,
// or a space when the run is whitespace only.
func terminatorOf(sep string) model.Terminator {
	if sep == "" {
		return model.TerminatorNone
	}
	for i := 0; i < len(sep); i++ {
		switch sep[i] {
		case ',':
			return model.TerminatorComma
		case '-':
			return model.TerminatorHyphen
		case '.':
			return model.TerminatorPeriod
		}
	}
	return model.TerminatorSpace
}
