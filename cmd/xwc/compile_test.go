package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
)

func resetCompileFlags(file, format string) {
	compileFlags.file = file
	compileFlags.format = format
	compileFlags.model = false
}

func TestCompileDefinition_Text(t *testing.T) {
	cmd, out := testCommand(t)
	resetCompileFlags("testdata/valid.yaml", "text")

	if err := compileDefinition(cmd, nil); err != nil {
		t.Fatalf("compileDefinition() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"testdata/valid.yaml: 5x5 grid, 12 light cells",
		"1a,2d    Pet, with fish (3,4)  CAT",
		"4a       Cheese (4)  BRIE",
		"2d       see 1a",
		"  CAT#F\n  A###I\n  BRIES\n  ####H\n  #####\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCompileDefinition_JSON(t *testing.T) {
	cmd, out := testCommand(t)
	resetCompileFlags("testdata/valid.yaml", "json")

	if err := compileDefinition(cmd, nil); err != nil {
		t.Fatalf("compileDefinition() error = %v", err)
	}

	var report CompileReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out.String())
	}

	want := CompileReport{
		File:       "testdata/valid.yaml",
		Width:      5,
		Height:     5,
		LightCells: 12,
		Across: []ClueSummary{
			{ID: "1a", Text: "Pet, with fish", Length: "3,4", Segments: []string{"2d"}, Solution: "CAT"},
			{ID: "4a", Text: "Cheese", Length: "4", Solution: "BRIE"},
		},
		Down: []ClueSummary{
			{ID: "1d", Text: "Taxi", Length: "3", Solution: "CAB"},
			{ID: "2d", Text: "See 1", Length: "4", Head: "1a", Solution: "FISH"},
		},
		Grid: []string{"CAT#F", "A###I", "BRIES", "####H", "#####"},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileDefinition_Model(t *testing.T) {
	cmd, out := testCommand(t)
	resetCompileFlags("testdata/valid.yaml", "text")
	compileFlags.model = true

	if err := compileDefinition(cmd, nil); err != nil {
		t.Fatalf("compileDefinition() error = %v", err)
	}

	var model struct {
		Width int `json:"width"`
		Clues []struct {
			ID         string `json:"id"`
			LengthText string `json:"length_text"`
		} `json:"clues"`
	}
	if err := json.Unmarshal(out.Bytes(), &model); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if model.Width != 5 || len(model.Clues) != 4 {
		t.Fatalf("model = %+v", model)
	}
	if model.Clues[0].ID != "1a" || model.Clues[0].LengthText != "3,4" {
		t.Errorf("first clue = %+v", model.Clues[0])
	}
}

func TestCompileDefinition_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		format   string
		wantType xwErrors.ErrorType
	}{
		{"no file", "", "text", ""},
		{"bad format", "testdata/valid.yaml", "xml", ""},
		{"grammar error", "testdata/invalid.yaml", "text", xwErrors.ErrorTypeGrammar},
		{"missing file", "testdata/nonexistent.yaml", "text", xwErrors.ErrorTypeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := testCommand(t)
			resetCompileFlags(tt.file, tt.format)

			err := compileDefinition(cmd, nil)
			if err == nil {
				t.Fatal("compileDefinition() succeeded, want error")
			}
			if tt.wantType != "" && !xwErrors.IsType(err, tt.wantType) {
				t.Errorf("error = %v, want type %s", err, tt.wantType)
			}
		})
	}
}
