package compiler

import (
	"fmt"
	"log/slog"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/model"
	"mercator-hq/crossword/pkg/crossword/schema"
)

// Assemble allocates a width×height grid and places every compiled clue on
// it, across clues first and then down clues, each in the given order.
//
// Assemble takes ownership of the clues: it assigns their Ref, resets and
// fills their Cells, and makes each its own head. It fails on negative
// dimensions or dimensions above DefaultMaxGridSize, on clues that leave the
// grid, and on intersecting clues that disagree on a letter or a label.
func Assemble(width, height int, across, down []*model.Clue) (*model.Crossword, error) {
	return assemble(width, height, across, down, DefaultMaxGridSize, discardLogger)
}

func assemble(width, height int, across, down []*model.Clue, maxSize int, logger *slog.Logger) (*model.Crossword, error) {
	if width < 0 || height < 0 {
		return nil, xwErrors.Newf(xwErrors.ErrorTypeStructural,
			"grid dimensions must not be negative, got %dx%d", width, height)
	}
	if err := checkGridSize(width, height, maxSize); err != nil {
		return nil, err
	}

	cw := model.New(width, height)
	cw.Across = across
	cw.Down = down
	cw.Clues = make([]*model.Clue, 0, len(across)+len(down))

	for _, list := range [][]*model.Clue{across, down} {
		for _, clue := range list {
			clue.Ref = model.ClueRef(len(cw.Clues))
			clue.Head = clue.Ref
			clue.Previous = model.NoClue
			clue.Next = model.NoClue
			clue.TailSegments = nil
			clue.FlatCells = nil
			clue.LengthText = ""
			cw.Clues = append(cw.Clues, clue)
		}
	}

	for i, clue := range across {
		if err := placeClue(cw, clue); err != nil {
			return nil, withListPath(err, schema.FieldAcrossClues, i)
		}
	}
	for i, clue := range down {
		if err := placeClue(cw, clue); err != nil {
			return nil, withListPath(err, schema.FieldDownClues, i)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if cell := cw.Cells[x][y]; cell.Light {
				cw.LightCells = append(cw.LightCells, cell)
			}
		}
	}

	logger.Debug("Grid assembled",
		"width", width,
		"height", height,
		"clues", len(cw.Clues),
		"light_cells", len(cw.LightCells),
	)

	return cw, nil
}

// placeClue checks the clue's extent and writes it onto the grid.
func placeClue(cw *model.Crossword, clue *model.Clue) error {
	if err := checkBounds(cw, clue); err != nil {
		return err
	}

	boundaries := wordBoundaries(clue)
	dx, dy := clue.Direction.Step()
	clue.Cells = make([]*model.Cell, 0, clue.SegmentLength)

	for i := 0; i < clue.SegmentLength; i++ {
		cell := cw.Cells[clue.X+i*dx][clue.Y+i*dy]
		previous := cw.Clue(previousOwner(cell, clue.Direction))

		cell.Attach(clue.Direction, clue.Ref, i)
		clue.Cells = append(clue.Cells, cell)
		if t, ok := boundaries[i]; ok {
			cell.SetTerminator(clue.Direction, t)
		}

		if err := mergeLetter(&cell.Answer, clue.Answer[i], "answer", cell, clue, previous); err != nil {
			return err
		}
		if err := mergeLetter(&cell.Solution, clue.Solution[i], "solution", cell, clue, previous); err != nil {
			return err
		}

		if i == 0 {
			if err := mergeLabel(cw, cell, clue); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkBounds(cw *model.Crossword, clue *model.Clue) error {
	var reason string
	switch {
	case !cw.InBounds(clue.X, clue.Y):
		reason = "doesn't start in the bounds"
	case clue.IsAcross() && clue.X+clue.SegmentLength > cw.Width:
		reason = "exceeds horizontal bounds"
	case !clue.IsAcross() && clue.Y+clue.SegmentLength > cw.Height:
		reason = "exceeds vertical bounds"
	default:
		return nil
	}

	return xwErrors.Newf(xwErrors.ErrorTypeBounds,
		"clue %s %s: starts at (%d,%d) with length %d on a %dx%d grid",
		clue.ID, reason, clue.X+1, clue.Y+1, clue.SegmentLength, cw.Width, cw.Height).
		WithClue(clue.ID)
}

// wordBoundaries maps the letter index ending each interior word to that
// word's terminator. The final word has no boundary.
func wordBoundaries(clue *model.Clue) map[int]model.Terminator {
	boundaries := make(map[int]model.Terminator, len(clue.WordLengths))
	end := 0
	for w := 0; w < len(clue.WordLengths)-1; w++ {
		end += clue.WordLengths[w]
		if t := clue.Terminators[w]; t != model.TerminatorNone {
			boundaries[end-1] = t
		}
	}
	return boundaries
}

// previousOwner returns the clue that last wrote to the cell before a clue
// running in direction d: a clue already occupying the same direction
// (overlapping segments) or else the crossing clue.
func previousOwner(cell *model.Cell, d model.Direction) model.ClueRef {
	if ref := cell.ClueFor(d); ref.IsValid() {
		return ref
	}
	if d == model.DirectionAcross {
		return cell.DownClue
	}
	return cell.AcrossClue
}

// mergeLetter writes letter into slot unless the slot already holds a
// different non-blank letter. A blank letter never overwrites.
func mergeLetter(slot *model.Letter, letter byte, what string, cell *model.Cell, clue, previous *model.Clue) error {
	incoming := model.Letter(letter)
	if incoming.IsBlank() {
		return nil
	}
	if !slot.IsBlank() && *slot != incoming {
		prevID := "?"
		if previous != nil {
			prevID = previous.ID
		}
		return xwErrors.Newf(xwErrors.ErrorTypeCoherence,
			"clue %s conflicts with clue %s at (%d,%d): %s '%c' vs '%c'",
			clue.ID, prevID, cell.X+1, cell.Y+1, what, letter, byte(*slot)).
			WithClue(clue.ID)
	}
	*slot = incoming
	return nil
}

// mergeLabel sets the cell label from the clue starting there, or fails if
// another clue starting there has a different number.
func mergeLabel(cw *model.Crossword, cell *model.Cell, clue *model.Clue) error {
	if cell.LabelText != "" && cell.LabelText != clue.LabelText {
		other := "?"
		if owner := labelOwner(cw, cell, clue); owner != nil {
			other = owner.ID
		}
		return xwErrors.Newf(xwErrors.ErrorTypeCoherence,
			"clue %s conflicts with clue %s at (%d,%d): label %q vs %q",
			clue.ID, other, cell.X+1, cell.Y+1, clue.LabelText, cell.LabelText).
			WithClue(clue.ID)
	}
	cell.LabelText = clue.LabelText
	return nil
}

// labelOwner finds the clue other than clue that starts at cell.
func labelOwner(cw *model.Crossword, cell *model.Cell, clue *model.Clue) *model.Clue {
	for _, ref := range []model.ClueRef{cell.AcrossClue, cell.DownClue} {
		other := cw.Clue(ref)
		if other != nil && other != clue && other.X == cell.X && other.Y == cell.Y {
			return other
		}
	}
	for _, other := range cw.Clues {
		if other != clue && other.X == cell.X && other.Y == cell.Y && len(other.Cells) > 0 {
			return other
		}
	}
	return nil
}

func withListPath(err error, list string, index int) error {
	if e, ok := xwErrors.As(err); ok {
		e.PrefixPath(fmt.Sprintf("%s[%d]", list, index))
	}
	return err
}

// checkGridSize rejects dimensions above limit.
func checkGridSize(width, height, limit int) error {
	for _, d := range []struct {
		field string
		n     int
	}{
		{schema.FieldWidth, width},
		{schema.FieldHeight, height},
	} {
		if d.n > limit {
			return xwErrors.Newf(xwErrors.ErrorTypeStructural,
				"field '%s' is %d, above the maximum grid size %d", d.field, d.n, limit).
				WithPath(d.field).
				WithSuggestion("raise compiler.max_grid_size if the grid really is this large")
		}
	}
	return nil
}
