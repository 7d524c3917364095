package compiler

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/grammar"
	"mercator-hq/crossword/pkg/crossword/markdown"
	"mercator-hq/crossword/pkg/crossword/model"
	"mercator-hq/crossword/pkg/crossword/schema"
)

// CompileClue compiles one clue specification into a self-contained clue
// model. The returned clue has no grid placement yet: Cells is empty and
// Ref is NoClue until the grid assembler runs.
func CompileClue(spec *schema.ClueSpec, dir model.Direction) (*model.Clue, error) {
	return compileClue(spec, dir, discardLogger)
}

func compileClue(spec *schema.ClueSpec, dir model.Direction, logger *slog.Logger) (*model.Clue, error) {
	if spec == nil {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeSchema, "clue specification is missing")
	}
	if !dir.IsValid() {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeSchema,
			"clue %q has invalid direction %q, want across or down", spec.Clue, dir)
	}

	parsed, err := grammar.Parse(spec.Clue)
	if err != nil {
		if e, ok := xwErrors.As(err); ok {
			e.PrefixPath(schema.FieldClue)
		}
		return nil, err
	}

	head := parsed.Segments[0]
	suffix := head.Direction.Suffix()
	if suffix == "" {
		suffix = dir.Suffix()
	}

	clue := &model.Clue{
		Ref:        model.NoClue,
		ID:         strconv.Itoa(head.Number) + suffix,
		Direction:  dir,
		HeadNumber: head.Number,
		LabelText:  strconv.Itoa(head.Number),
		ClueText:   markdown.Render(parsed.Text),
		X:          spec.X - 1,
		Y:          spec.Y - 1,
		Cells:      []*model.Cell{},
		Previous:   model.NoClue,
		Next:       model.NoClue,
		Head:       model.NoClue,
	}

	for _, seg := range parsed.Segments[1:] {
		clue.TailDescriptors = append(clue.TailDescriptors, model.TailDescriptor{
			HeadNumber: seg.Number,
			Direction:  seg.Direction,
		})
	}

	for _, w := range parsed.Words {
		clue.WordLengths = append(clue.WordLengths, w.Length)
		clue.Terminators = append(clue.Terminators, w.Terminator)
		clue.SegmentLength += w.Length
	}

	clue.Answer = normalizeAnswer(spec.Answer, clue.SegmentLength)
	if spec.Answer != nil && utf8.RuneCountInString(*spec.Answer) > clue.SegmentLength {
		logger.Warn("Answer longer than clue, truncated",
			"clue", clue.ID,
			"answer", *spec.Answer,
			"length", clue.SegmentLength,
		)
	}

	if clue.Solution, err = normalizeSolution(spec.Solution, clue); err != nil {
		return nil, err
	}
	if clue.Revealed, err = normalizeRevealed(spec.Revealed, clue); err != nil {
		return nil, err
	}

	return clue, nil
}

// normalizeAnswer upper-cases the solver's answer, blanks anything that is
// not a letter or space, and pads or truncates to n.
func normalizeAnswer(answer *string, n int) model.Buffer {
	buf := model.NewBuffer(n)
	if answer == nil {
		return buf
	}
	i := 0
	for _, r := range strings.ToUpper(*answer) {
		if i == n {
			break
		}
		if isLetter(r) {
			buf[i] = byte(r)
		}
		i++
	}
	return buf
}

// normalizeSolution upper-cases the setter's solution and strips every
// non-letter. The remaining letters must fill the clue exactly.
func normalizeSolution(solution *string, clue *model.Clue) (model.Buffer, error) {
	if solution == nil {
		return model.NewBuffer(clue.SegmentLength), nil
	}

	buf := make(model.Buffer, 0, clue.SegmentLength)
	for _, r := range strings.ToUpper(*solution) {
		if isLetter(r) {
			buf = append(buf, byte(r))
		}
	}

	if len(buf) != clue.SegmentLength {
		return nil, lengthMismatch(clue, schema.FieldSolution, buf.String(), len(buf))
	}
	return buf, nil
}

// normalizeRevealed upper-cases the revealed letters and blanks anything
// that is not a letter. Nothing is stripped, so the raw text must already
// have the clue's length.
func normalizeRevealed(revealed *string, clue *model.Clue) (model.Buffer, error) {
	if revealed == nil {
		return model.NewBuffer(clue.SegmentLength), nil
	}

	buf := make(model.Buffer, 0, utf8.RuneCountInString(*revealed))
	for _, r := range strings.ToUpper(*revealed) {
		if isLetter(r) {
			buf = append(buf, byte(r))
		} else {
			buf = append(buf, model.Blank)
		}
	}

	if len(buf) != clue.SegmentLength {
		return nil, lengthMismatch(clue, schema.FieldRevealed, buf.String(), len(buf))
	}
	return buf, nil
}

func lengthMismatch(clue *model.Clue, field, produced string, got int) *xwErrors.Error {
	return xwErrors.Newf(xwErrors.ErrorTypeLengthMismatch,
		"clue %s: %s %q has %d letters but length (%s) requires %d",
		clue.ID, field, produced, got, clue.LengthNotation(), clue.SegmentLength).
		WithClue(clue.ID).
		WithPath(field).
		WithSuggestion(xwErrors.SuggestSolutionLength(clue.SegmentLength))
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
