package model

// Crossword is a compiled puzzle. It owns every Cell and Clue; clues refer
// to each other and cells refer to clues through ClueRef indices into Clues.
type Crossword struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  [][]*Cell `json:"cells"` // indexed [x][y]

	// Clues holds the across clues in definition order followed by the down
	// clues in definition order. Clue.Ref is the index into this slice.
	Clues []*Clue `json:"clues"`

	// Across and Down are ordered views over Clues.
	Across []*Clue `json:"-"`
	Down   []*Clue `json:"-"`

	// LightCells lists the light cells in row-major order.
	LightCells []*Cell `json:"-"`
}

// New allocates a width×height grid of dark cells.
func New(width, height int) *Crossword {
	cells := make([][]*Cell, width)
	for x := range cells {
		cells[x] = make([]*Cell, height)
		for y := range cells[x] {
			cells[x][y] = NewCell(x, y)
		}
	}
	return &Crossword{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// InBounds reports whether x, y is a grid coordinate.
func (cw *Crossword) InBounds(x, y int) bool {
	return x >= 0 && x < cw.Width && y >= 0 && y < cw.Height
}

// Cell returns the cell at x, y, or nil when out of bounds.
func (cw *Crossword) Cell(x, y int) *Cell {
	if !cw.InBounds(x, y) {
		return nil
	}
	return cw.Cells[x][y]
}

// Clue returns the clue for ref, or nil for NoClue or an out-of-range ref.
func (cw *Crossword) Clue(ref ClueRef) *Clue {
	if ref < 0 || int(ref) >= len(cw.Clues) {
		return nil
	}
	return cw.Clues[ref]
}

// ClueByID returns the clue with the given id, or nil.
func (cw *Crossword) ClueByID(id string) *Clue {
	for _, c := range cw.Clues {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ClueList returns the ordered clues for direction d.
func (cw *Crossword) ClueList(d Direction) []*Clue {
	if d == DirectionDown {
		return cw.Down
	}
	return cw.Across
}

// AcrossHeads returns the across clues that are their own head segment.
func (cw *Crossword) AcrossHeads() []*Clue {
	return heads(cw.Across)
}

// DownHeads returns the down clues that are their own head segment.
func (cw *Crossword) DownHeads() []*Clue {
	return heads(cw.Down)
}

// Chain returns the segments of the chain headed by head, in order.
func (cw *Crossword) Chain(head *Clue) []*Clue {
	chain := []*Clue{head}
	for next := cw.Clue(head.Next); next != nil; next = cw.Clue(next.Next) {
		chain = append(chain, next)
	}
	return chain
}

// CellCount returns the number of allocated cells.
func (cw *Crossword) CellCount() int {
	n := 0
	for _, column := range cw.Cells {
		n += len(column)
	}
	return n
}

func heads(clues []*Clue) []*Clue {
	out := make([]*Clue, 0, len(clues))
	for _, c := range clues {
		if c.IsHead() {
			out = append(out, c)
		}
	}
	return out
}
