package model

import (
	"encoding/json"
	"testing"
)

func TestFormatLength(t *testing.T) {
	tests := []struct {
		name        string
		lengths     []int
		terminators []Terminator
		want        string
	}{
		{"single word", []int{5}, []Terminator{TerminatorNone}, "5"},
		{"mixed", []int{5, 3, 4}, []Terminator{TerminatorComma, TerminatorHyphen, TerminatorNone}, "5,3-4"},
		{"acronym keeps final period", []int{1, 1, 1}, []Terminator{TerminatorPeriod, TerminatorPeriod, TerminatorPeriod}, "1.1.1."},
		{"trailing comma dropped", []int{4}, []Terminator{TerminatorComma}, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLength(tt.lengths, tt.terminators); got != tt.want {
				t.Errorf("FormatLength() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTailDescriptor_String(t *testing.T) {
	tests := []struct {
		td   TailDescriptor
		want string
	}{
		{TailDescriptor{HeadNumber: 3, Direction: DirectionAcross}, "3a"},
		{TailDescriptor{HeadNumber: 12, Direction: DirectionDown}, "12d"},
		{TailDescriptor{HeadNumber: 6, Direction: DirectionUnknown}, "6"},
	}

	for _, tt := range tests {
		if got := tt.td.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCell_Attach(t *testing.T) {
	c := NewCell(2, 3)
	if c.Light || c.AcrossClue.IsValid() || c.DownClue.IsValid() {
		t.Fatalf("NewCell() = %+v, want dark and unreferenced", c)
	}

	c.Attach(DirectionDown, 4, 1)
	if !c.Light {
		t.Error("Attach() did not light the cell")
	}
	if c.ClueFor(DirectionDown) != 4 || c.LetterIndexFor(DirectionDown) != 1 {
		t.Errorf("down = (%d, %d), want (4, 1)", c.ClueFor(DirectionDown), c.LetterIndexFor(DirectionDown))
	}
	if c.ClueFor(DirectionAcross) != NoClue {
		t.Errorf("across clue = %d, want NoClue", c.ClueFor(DirectionAcross))
	}

	c.SetTerminator(DirectionDown, TerminatorHyphen)
	if c.TerminatorFor(DirectionDown) != TerminatorHyphen || c.TerminatorFor(DirectionAcross) != TerminatorNone {
		t.Error("SetTerminator() tagged the wrong direction")
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(3)
	if !b.IsBlank() {
		t.Errorf("NewBuffer(3) = %q, want blank", b)
	}
	b[1] = 'A'
	if b.IsBlank() {
		t.Error("IsBlank() = true after a letter was set")
	}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `" A "` {
		t.Errorf("Marshal() = %s, want %q", data, `" A "`)
	}
}

func TestDirection(t *testing.T) {
	if dx, dy := DirectionAcross.Step(); dx != 1 || dy != 0 {
		t.Errorf("across step = (%d, %d)", dx, dy)
	}
	if dx, dy := DirectionDown.Step(); dx != 0 || dy != 1 {
		t.Errorf("down step = (%d, %d)", dx, dy)
	}
	if DirectionUnknown.IsValid() {
		t.Error("DirectionUnknown.IsValid() = true")
	}
	if !TerminatorSpace.IsWordBreak() || TerminatorHyphen.IsWordBreak() {
		t.Error("IsWordBreak() mismatch")
	}
}
