package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/model"
)

func TestLoad_YAMLAndJSONAgree(t *testing.T) {
	loader := NewLoader()

	fromYAML, err := loader.Load(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}
	fromJSON, err := loader.Load(filepath.Join("testdata", "small.json"))
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}

	if diff := cmp.Diff(fromYAML.Value, fromJSON.Value); diff != "" {
		t.Errorf("YAML and JSON values differ (-yaml +json):\n%s", diff)
	}

	want := map[string]any{
		"width":  5,
		"height": 5,
		"acrossClues": []any{
			map[string]any{"x": 1, "y": 1, "clue": "1. Fruit (5)", "solution": "APPLE"},
		},
		"downClues": []any{
			map[string]any{"x": 1, "y": 1, "clue": "1. Cross (5)", "solution": "ANGRY"},
		},
	}
	if diff := cmp.Diff(want, fromYAML.Value); diff != "" {
		t.Errorf("Value mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Positions(t *testing.T) {
	src, err := NewLoader().Load(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		path     string
		wantLine int
		wantCol  int
	}{
		{"width", 1, 8},
		{"acrossClues[0]", 4, 5},
		{"acrossClues[0].clue", 6, 11},
		{"downClues[0].solution", 12, 15},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			loc, ok := src.Location(tt.path)
			if !ok {
				t.Fatalf("Location(%q) not found", tt.path)
			}
			if loc.Line != tt.wantLine || loc.Column != tt.wantCol {
				t.Errorf("Location(%q) = %d:%d, want %d:%d", tt.path, loc.Line, loc.Column, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestLocation_FallsBackToParent(t *testing.T) {
	src, err := NewLoader().Load(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	loc, ok := src.Location("acrossClues[0].answer")
	if !ok {
		t.Fatal("Location() found nothing")
	}
	if loc.Line != 4 {
		t.Errorf("fallback line = %d, want 4 (the clue entry)", loc.Line)
	}
}

func TestAnnotate(t *testing.T) {
	src, err := NewLoader().Load(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	compileErr := xwErrors.Newf(xwErrors.ErrorTypeGrammar, "bad clue").
		WithPath("acrossClues[0].clue")

	got := src.Annotate(compileErr)
	e, ok := xwErrors.As(got)
	if !ok {
		t.Fatalf("Annotate() returned %T", got)
	}

	wantLoc := model.Location{File: filepath.Join("testdata", "small.yaml"), Line: 6, Column: 11}
	if e.Location != wantLoc {
		t.Errorf("Location = %v, want %v", e.Location, wantLoc)
	}
	if !strings.Contains(e.Context, `-> 6 |     clue: "1. Fruit (5)"`) {
		t.Errorf("Context does not mark line 6:\n%s", e.Context)
	}
}

func TestAnnotate_PassesThroughOtherErrors(t *testing.T) {
	src, err := NewLoader().LoadBytes([]byte("width: 1\n"), "inline")
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	plain := os.ErrClosed
	if got := src.Annotate(plain); got != plain {
		t.Errorf("Annotate() changed a foreign error: %v", got)
	}
}

func TestLoadBytes_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantType xwErrors.ErrorType
		wantLine int
	}{
		{
			name:     "syntax error",
			data:     "width: 5\nheight: [1, 2\n",
			wantType: xwErrors.ErrorTypeSyntax,
		},
		{
			name:     "duplicate key",
			data:     "width: 5\nwidth: 6\n",
			wantType: xwErrors.ErrorTypeSyntax,
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().LoadBytes([]byte(tt.data), "inline.yaml")
			if !xwErrors.IsType(err, tt.wantType) {
				t.Fatalf("LoadBytes() error = %v, want type %s", err, tt.wantType)
			}
			e, _ := xwErrors.As(err)
			if tt.wantLine > 0 && e.Location.Line != tt.wantLine {
				t.Errorf("Location.Line = %d, want %d", e.Location.Line, tt.wantLine)
			}
		})
	}
}

func TestLoadBytes_Aliases(t *testing.T) {
	src, err := NewLoader().LoadBytes([]byte("base: &b {x: 1}\nother: *b\n"), "alias.yaml")
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	want := map[string]any{
		"base":  map[string]any{"x": 1},
		"other": map[string]any{"x": 1},
	}
	if diff := cmp.Diff(want, src.Value); diff != "" {
		t.Errorf("Value mismatch (-want +got):\n%s", diff)
	}
	if _, ok := src.Positions["other.x"]; !ok {
		t.Error("no position recorded for the expanded alias")
	}
}

// nestedAliases builds a small document in which every level repeats the
// previous one ten times, so full expansion would produce 10^levels values.
func nestedAliases(levels int) string {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		ref := fmt.Sprintf("*l%d", i-1)
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, strings.TrimSuffix(strings.Repeat(ref+", ", 10), ", "))
	}
	return b.String()
}

func TestLoadBytes_AliasErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{
			name:    "alias inside its own sequence",
			data:    "a: &x [*x]\n",
			wantMsg: "alias *x refers to a value that contains it",
		},
		{
			name:    "alias inside its own mapping",
			data:    "a: &x\n  b: *x\n",
			wantMsg: "alias *x refers to a value that contains it",
		},
		{
			name:    "nested expansion",
			data:    nestedAliases(7),
			wantMsg: "document expands to too many values through aliases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				_, err := NewLoader().LoadBytes([]byte(tt.data), "alias.yaml")
				done <- err
			}()

			var err error
			select {
			case err = <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("LoadBytes() did not return")
			}

			e, ok := xwErrors.As(err)
			if !ok || e.Type != xwErrors.ErrorTypeSyntax {
				t.Fatalf("LoadBytes() error = %v, want syntax error", err)
			}
			if e.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", e.Message, tt.wantMsg)
			}
			if !e.Location.IsValid() {
				t.Errorf("Location = %v, want a position in the document", e.Location)
			}
		})
	}
}

func TestLoadBytes_Empty(t *testing.T) {
	src, err := NewLoader().LoadBytes(nil, "empty.yaml")
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if src.Value != nil {
		t.Errorf("Value = %v, want nil", src.Value)
	}
}

func TestLoad_IOErrors(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.yaml")
	if err := os.WriteFile(big, []byte(strings.Repeat("#\n", 64)), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		loader *Loader
		path   string
	}{
		{"missing file", NewLoader(), filepath.Join(dir, "missing.yaml")},
		{"file too large", NewLoader().WithMaxFileSize(16), big},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.loader.Load(tt.path)
			if !xwErrors.IsType(err, xwErrors.ErrorTypeIO) {
				t.Errorf("Load() error = %v, want io error", err)
			}
		})
	}
}

func TestParent(t *testing.T) {
	tests := map[string]string{
		"acrossClues[2].clue": "acrossClues[2]",
		"acrossClues[2]":      "acrossClues",
		"width":               "",
		"":                    "",
	}
	for in, want := range tests {
		if got := parent(in); got != want {
			t.Errorf("parent(%q) = %q, want %q", in, got, want)
		}
	}
}
