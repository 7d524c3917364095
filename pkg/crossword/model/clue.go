package model

import "strconv"

// ClueRef identifies a clue by its index in Crossword.Clues.
type ClueRef int

// NoClue is the ClueRef of an absent clue.
const NoClue ClueRef = -1

// IsValid reports whether the reference points at a clue.
func (r ClueRef) IsValid() bool {
	return r >= 0
}

// TailDescriptor refers from a head clue to one of its sibling segments.
// Direction is DirectionUnknown when the label did not carry an a/d suffix.
type TailDescriptor struct {
	HeadNumber int       `json:"head_number"`
	Direction  Direction `json:"direction"`
}

// String returns the descriptor in label notation, e.g. "3a" or "6".
func (t TailDescriptor) String() string {
	return strconv.Itoa(t.HeadNumber) + t.Direction.Suffix()
}

// Clue is a compiled clue segment.
//
// The clue compiler fills the identity, text, length, and buffer fields.
// The grid assembler assigns Ref and Cells. The segment linker fills the
// chain fields; until then every clue is its own head.
type Clue struct {
	Ref        ClueRef   `json:"ref"`
	ID         string    `json:"id"`        // head number plus direction suffix, e.g. "3a"
	Direction  Direction `json:"direction"` // across or down
	HeadNumber int       `json:"head_number"`
	LabelText  string    `json:"label_text"` // head number as display text
	ClueText   string    `json:"clue_text"`  // markup rendered

	WordLengths   []int        `json:"word_lengths"`
	Terminators   []Terminator `json:"terminators"` // one per word; the last is usually TerminatorNone
	SegmentLength int          `json:"segment_length"`

	TailDescriptors []TailDescriptor `json:"tail_descriptors,omitempty"`

	Answer   Buffer `json:"answer"`
	Solution Buffer `json:"solution"`
	Revealed Buffer `json:"revealed"`

	// X and Y are the 0-based coordinates of the first letter.
	X int `json:"x"`
	Y int `json:"y"`

	Cells []*Cell `json:"-"`

	// Chain links, set by the segment linker.
	TailSegments []ClueRef `json:"tail_segments,omitempty"`
	Previous     ClueRef   `json:"previous"`
	Next         ClueRef   `json:"next"`
	Head         ClueRef   `json:"head"`

	// Set on head segments only.
	FlatCells  []*Cell `json:"-"`
	LengthText string  `json:"length_text,omitempty"`
}

// IsAcross reports whether the clue runs across.
func (c *Clue) IsAcross() bool {
	return c.Direction == DirectionAcross
}

// IsHead reports whether the clue is the head segment of its chain.
func (c *Clue) IsHead() bool {
	return c.Head == c.Ref
}

// IsMultiSegment reports whether the clue belongs to a chain of more than
// one segment.
func (c *Clue) IsMultiSegment() bool {
	return len(c.TailSegments) > 0 || c.Previous.IsValid() || c.Next.IsValid()
}

// Start returns the 0-based coordinates of the first letter.
func (c *Clue) Start() (x, y int) {
	return c.X, c.Y
}

// LengthNotation returns the segment's own word lengths in length
// notation, e.g. "5,3-4".
func (c *Clue) LengthNotation() string {
	return FormatLength(c.WordLengths, c.Terminators)
}
