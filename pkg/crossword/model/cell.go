package model

// Cell is one grid square. A light cell is part of the puzzle and belongs
// to at least one clue; a dark cell is blocked.
type Cell struct {
	X     int  `json:"x"` // 0-based
	Y     int  `json:"y"` // 0-based
	Light bool `json:"light"`

	AcrossClue        ClueRef    `json:"across_clue"`
	DownClue          ClueRef    `json:"down_clue"`
	AcrossLetterIndex int        `json:"across_letter_index"`
	DownLetterIndex   int        `json:"down_letter_index"`
	AcrossTerminator  Terminator `json:"across_terminator,omitempty"`
	DownTerminator    Terminator `json:"down_terminator,omitempty"`

	Answer   Letter `json:"answer"`
	Solution Letter `json:"solution"`

	// LabelText is set only on the first cell of a clue.
	LabelText string `json:"label_text,omitempty"`
}

// NewCell returns a dark, unreferenced cell at x, y.
func NewCell(x, y int) *Cell {
	return &Cell{
		X:                 x,
		Y:                 y,
		AcrossClue:        NoClue,
		DownClue:          NoClue,
		AcrossLetterIndex: -1,
		DownLetterIndex:   -1,
		Answer:            Blank,
		Solution:          Blank,
	}
}

// ClueFor returns the clue reference for a direction.
func (c *Cell) ClueFor(d Direction) ClueRef {
	if d == DirectionDown {
		return c.DownClue
	}
	return c.AcrossClue
}

// LetterIndexFor returns the position of the cell within the clue running
// in direction d, or -1.
func (c *Cell) LetterIndexFor(d Direction) int {
	if d == DirectionDown {
		return c.DownLetterIndex
	}
	return c.AcrossLetterIndex
}

// TerminatorFor returns the word terminator recorded for direction d.
func (c *Cell) TerminatorFor(d Direction) Terminator {
	if d == DirectionDown {
		return c.DownTerminator
	}
	return c.AcrossTerminator
}

// Attach marks the cell light and records that clue ref covers it at
// letter position index.
func (c *Cell) Attach(d Direction, ref ClueRef, index int) {
	c.Light = true
	if d == DirectionDown {
		c.DownClue = ref
		c.DownLetterIndex = index
		return
	}
	c.AcrossClue = ref
	c.AcrossLetterIndex = index
}

// SetTerminator tags the cell as the end of an interior word for direction d.
func (c *Cell) SetTerminator(d Direction, t Terminator) {
	if d == DirectionDown {
		c.DownTerminator = t
		return
	}
	c.AcrossTerminator = t
}
