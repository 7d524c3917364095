package model

import "strings"

// Blank is the character stored in an unfilled buffer position.
const Blank = ' '

// Buffer is a fixed-length letter buffer keyed by clue letter position.
// A space means the position is blank. Consumers may mutate a Buffer in
// place as the solver types, reveals, or resets letters.
type Buffer []byte

// NewBuffer returns an all-blank buffer of length n.
func NewBuffer(n int) Buffer {
	return Buffer(strings.Repeat(string(Blank), n))
}

// String returns the buffer contents.
func (b Buffer) String() string {
	return string(b)
}

// IsBlank reports whether every position is blank.
func (b Buffer) IsBlank() bool {
	for _, c := range b {
		if c != Blank {
			return false
		}
	}
	return true
}

// MarshalText encodes the buffer as its string contents rather than base64.
func (b Buffer) MarshalText() ([]byte, error) {
	return []byte(b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Buffer) UnmarshalText(text []byte) error {
	*b = append((*b)[:0], text...)
	return nil
}

// Letter is a single cell character. The zero value is not blank; cells are
// initialized with Blank.
type Letter byte

// IsBlank reports whether the letter is unfilled.
func (l Letter) IsBlank() bool {
	return l == Blank || l == 0
}

// String returns the letter as a one-character string.
func (l Letter) String() string {
	return string(rune(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Letter) MarshalText() ([]byte, error) {
	return []byte{byte(l)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Letter) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*l = Blank
		return nil
	}
	*l = Letter(text[0])
	return nil
}
