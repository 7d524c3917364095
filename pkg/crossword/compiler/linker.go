package compiler

import (
	"fmt"
	"log/slog"
	"strings"

	"mercator-hq/crossword/pkg/crossword/model"
)

// Link resolves multi-segment chains on an assembled crossword. Every clue
// with tail descriptors becomes the head of a chain made of itself followed
// by the resolved tails; Previous, Next, and Head are set on each segment,
// and FlatCells and LengthText on every head.
//
// Link expects references to have been validated. An unresolved tail is a
// programming error and panics.
func Link(cw *model.Crossword) {
	link(cw, discardLogger)
}

func link(cw *model.Crossword, logger *slog.Logger) {
	chains := 0
	for _, head := range cw.Clues {
		if len(head.TailDescriptors) == 0 {
			continue
		}

		prev := head
		head.TailSegments = make([]model.ClueRef, 0, len(head.TailDescriptors))
		for _, desc := range head.TailDescriptors {
			tail := resolveTail(cw, desc)
			if tail == nil {
				panic(fmt.Sprintf("compiler: clue %s refers to unknown segment %s", head.ID, desc))
			}
			head.TailSegments = append(head.TailSegments, tail.Ref)
			tail.Head = head.Ref
			tail.Previous = prev.Ref
			prev.Next = tail.Ref
			prev = tail
		}
		chains++
	}

	for _, clue := range cw.Clues {
		if !clue.IsHead() {
			continue
		}
		chain := cw.Chain(clue)
		clue.FlatCells = flatCells(chain)
		clue.LengthText = lengthText(chain)
	}

	logger.Debug("Segments linked", "chains", chains)
}

// resolveTail finds the clue a descriptor names. A descriptor without a
// direction prefers an across clue, then a down clue.
func resolveTail(cw *model.Crossword, desc model.TailDescriptor) *model.Clue {
	return findSegment(cw.Across, cw.Down, desc)
}

func findSegment(across, down []*model.Clue, desc model.TailDescriptor) *model.Clue {
	lists := map[model.Direction][]*model.Clue{
		model.DirectionAcross: across,
		model.DirectionDown:   down,
	}
	directions := []model.Direction{desc.Direction}
	if !desc.Direction.IsValid() {
		directions = []model.Direction{model.DirectionAcross, model.DirectionDown}
	}
	for _, d := range directions {
		for _, clue := range lists[d] {
			if clue.HeadNumber == desc.HeadNumber {
				return clue
			}
		}
	}
	return nil
}

func flatCells(chain []*model.Clue) []*model.Cell {
	seen := make(map[*model.Cell]bool)
	var cells []*model.Cell
	for _, segment := range chain {
		for _, cell := range segment.Cells {
			if !seen[cell] {
				seen[cell] = true
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

func lengthText(chain []*model.Clue) string {
	parts := make([]string, len(chain))
	for i, segment := range chain {
		parts[i] = segment.LengthNotation()
	}
	return strings.Join(parts, ",")
}
