package compiler

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/model"
	"mercator-hq/crossword/pkg/crossword/schema"
)

func str(s string) *string { return &s }

func TestCompileClue_Basic(t *testing.T) {
	clue, err := CompileClue(&schema.ClueSpec{X: 12, Y: 9, Clue: "3. Red or green fruit (5)"}, model.DirectionAcross)
	if err != nil {
		t.Fatalf("CompileClue() error = %v", err)
	}

	if clue.LabelText != "3" {
		t.Errorf("LabelText = %q, want 3", clue.LabelText)
	}
	if clue.ID != "3a" {
		t.Errorf("ID = %q, want 3a", clue.ID)
	}
	if clue.HeadNumber != 3 {
		t.Errorf("HeadNumber = %d, want 3", clue.HeadNumber)
	}
	if clue.ClueText != "Red or green fruit" {
		t.Errorf("ClueText = %q", clue.ClueText)
	}
	if clue.SegmentLength != 5 {
		t.Errorf("SegmentLength = %d, want 5", clue.SegmentLength)
	}
	if got := clue.Answer.String(); got != "     " {
		t.Errorf("Answer = %q, want 5 spaces", got)
	}
	if clue.X != 11 || clue.Y != 8 {
		t.Errorf("X,Y = %d,%d, want 11,8", clue.X, clue.Y)
	}
	if len(clue.Cells) != 0 {
		t.Errorf("Cells = %v, want empty", clue.Cells)
	}
	if !clue.IsAcross() {
		t.Error("IsAcross() = false")
	}
}

func TestCompileClue_WordLengths(t *testing.T) {
	clue, err := CompileClue(&schema.ClueSpec{X: 1, Y: 1, Clue: "9. Clue (5,3-4)"}, model.DirectionDown)
	if err != nil {
		t.Fatalf("CompileClue() error = %v", err)
	}

	if diff := cmp.Diff([]int{5, 3, 4}, clue.WordLengths); diff != "" {
		t.Errorf("WordLengths mismatch (-want +got):\n%s", diff)
	}
	if clue.SegmentLength != 12 {
		t.Errorf("SegmentLength = %d, want 12", clue.SegmentLength)
	}
	wantTerminators := []model.Terminator{model.TerminatorComma, model.TerminatorHyphen, model.TerminatorNone}
	if diff := cmp.Diff(wantTerminators, clue.Terminators); diff != "" {
		t.Errorf("Terminators mismatch (-want +got):\n%s", diff)
	}
	if clue.ID != "9d" {
		t.Errorf("ID = %q, want 9d", clue.ID)
	}
	if got := clue.LengthNotation(); got != "5,3-4" {
		t.Errorf("LengthNotation() = %q", got)
	}
}

func TestCompileClue_TailDescriptors(t *testing.T) {
	clue, err := CompileClue(&schema.ClueSpec{X: 1, Y: 1, Clue: "9,3a,4d,6. Clue (5)"}, model.DirectionAcross)
	if err != nil {
		t.Fatalf("CompileClue() error = %v", err)
	}

	want := []model.TailDescriptor{
		{HeadNumber: 3, Direction: model.DirectionAcross},
		{HeadNumber: 4, Direction: model.DirectionDown},
		{HeadNumber: 6, Direction: model.DirectionUnknown},
	}
	if diff := cmp.Diff(want, clue.TailDescriptors); diff != "" {
		t.Errorf("TailDescriptors mismatch (-want +got):\n%s", diff)
	}
	if clue.ID != "9a" {
		t.Errorf("ID = %q, want 9a", clue.ID)
	}
}

func TestCompileClue_HeadSuffixWins(t *testing.T) {
	clue, err := CompileClue(&schema.ClueSpec{X: 1, Y: 1, Clue: "4d. Clue (3)"}, model.DirectionAcross)
	if err != nil {
		t.Fatalf("CompileClue() error = %v", err)
	}
	if clue.ID != "4d" {
		t.Errorf("ID = %q, want 4d", clue.ID)
	}
	if clue.Direction != model.DirectionAcross {
		t.Errorf("Direction = %s, want across", clue.Direction)
	}
}

func TestCompileClue_Markup(t *testing.T) {
	clue, err := CompileClue(&schema.ClueSpec{X: 1, Y: 1, Clue: "1. A **bold** _move_ (4)"}, model.DirectionAcross)
	if err != nil {
		t.Fatalf("CompileClue() error = %v", err)
	}
	if want := "A <strong>bold</strong> <em>move</em>"; clue.ClueText != want {
		t.Errorf("ClueText = %q, want %q", clue.ClueText, want)
	}
}

func TestCompileClue_Buffers(t *testing.T) {
	tests := []struct {
		name         string
		spec         schema.ClueSpec
		wantAnswer   string
		wantSolution string
		wantRevealed string
	}{
		{
			name:         "all absent",
			spec:         schema.ClueSpec{Clue: "1. C (4)"},
			wantAnswer:   "    ",
			wantSolution: "    ",
			wantRevealed: "    ",
		},
		{
			name:         "answer upper-cased and padded",
			spec:         schema.ClueSpec{Clue: "1. C (4)", Answer: str("ab")},
			wantAnswer:   "AB  ",
			wantSolution: "    ",
			wantRevealed: "    ",
		},
		{
			name:         "answer non-letters blanked",
			spec:         schema.ClueSpec{Clue: "1. C (4)", Answer: str("a-1b")},
			wantAnswer:   "A  B",
			wantSolution: "    ",
			wantRevealed: "    ",
		},
		{
			name:         "answer truncated",
			spec:         schema.ClueSpec{Clue: "1. C (4)", Answer: str("abcdef")},
			wantAnswer:   "ABCD",
			wantSolution: "    ",
			wantRevealed: "    ",
		},
		{
			name:         "solution stripped",
			spec:         schema.ClueSpec{Clue: "1. C (4,2,3)", Solution: str("Wind-up, Man")},
			wantAnswer:   "         ",
			wantSolution: "WINDUPMAN",
			wantRevealed: "         ",
		},
		{
			name:         "revealed keeps positions",
			spec:         schema.ClueSpec{Clue: "1. C (4)", Revealed: str("a c ")},
			wantAnswer:   "    ",
			wantSolution: "    ",
			wantRevealed: "A C ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clue, err := CompileClue(&tt.spec, model.DirectionAcross)
			if err != nil {
				t.Fatalf("CompileClue() error = %v", err)
			}
			if got := clue.Answer.String(); got != tt.wantAnswer {
				t.Errorf("Answer = %q, want %q", got, tt.wantAnswer)
			}
			if got := clue.Solution.String(); got != tt.wantSolution {
				t.Errorf("Solution = %q, want %q", got, tt.wantSolution)
			}
			if got := clue.Revealed.String(); got != tt.wantRevealed {
				t.Errorf("Revealed = %q, want %q", got, tt.wantRevealed)
			}
		})
	}
}

func TestCompileClue_Errors(t *testing.T) {
	tests := []struct {
		name     string
		spec     *schema.ClueSpec
		dir      model.Direction
		wantType xwErrors.ErrorType
		wantPath string
		wantMsg  []string
	}{
		{
			name:     "missing spec",
			dir:      model.DirectionAcross,
			wantType: xwErrors.ErrorTypeSchema,
		},
		{
			name:     "invalid direction",
			spec:     &schema.ClueSpec{Clue: "1. C (3)"},
			dir:      model.DirectionUnknown,
			wantType: xwErrors.ErrorTypeSchema,
		},
		{
			name:     "grammar",
			spec:     &schema.ClueSpec{Clue: "no shape here"},
			dir:      model.DirectionAcross,
			wantType: xwErrors.ErrorTypeGrammar,
			wantPath: "clue",
			wantMsg:  []string{"no shape here"},
		},
		{
			name:     "solution too short",
			spec:     &schema.ClueSpec{Clue: "2. C (5)", Solution: str("pear")},
			dir:      model.DirectionDown,
			wantType: xwErrors.ErrorTypeLengthMismatch,
			wantPath: "solution",
			wantMsg:  []string{"2d", `"PEAR"`, "(5)"},
		},
		{
			name:     "revealed wrong length",
			spec:     &schema.ClueSpec{Clue: "2. C (3)", Revealed: str("a")},
			dir:      model.DirectionAcross,
			wantType: xwErrors.ErrorTypeLengthMismatch,
			wantPath: "revealed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileClue(tt.spec, tt.dir)
			e, ok := xwErrors.As(err)
			if !ok {
				t.Fatalf("CompileClue() error = %v, want *errors.Error", err)
			}
			if e.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", e.Type, tt.wantType)
			}
			if e.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", e.Path, tt.wantPath)
			}
			for _, want := range tt.wantMsg {
				if !strings.Contains(e.Message, want) {
					t.Errorf("Message %q does not contain %q", e.Message, want)
				}
			}
		})
	}
}
