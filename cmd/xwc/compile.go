package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/crossword/pkg/cli"
	"mercator-hq/crossword/pkg/crossword/model"
)

var compileFlags struct {
	file   string
	format string
	model  bool
}

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a crossword definition",
	Long: `Compile a crossword definition and print a summary of the result.

The summary lists the grid size, every clue with its length and solution,
multi-segment chains, and the solution grid ('#' for blocked cells, '.' for
cells without a solution letter).

Examples:
  # Compile and summarize
  xwc compile --file daily.yaml

  # JSON summary
  xwc compile --file daily.yaml --format json

  # Full model, cells and clues, as JSON
  xwc compile --file daily.yaml --model`,
	RunE: compileDefinition,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileFlags.file, "file", "f", "", "definition file to compile")
	compileCmd.Flags().StringVar(&compileFlags.format, "format", "text", "output format: text, json")
	compileCmd.Flags().BoolVar(&compileFlags.model, "model", false, "print the full compiled model as JSON")
}

func compileDefinition(cmd *cobra.Command, args []string) error {
	if compileFlags.file == "" {
		return cli.NewConfigError("file", "--file must be specified")
	}
	format, err := cli.ParseFormat(compileFlags.format)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	return withEnvironment(ctx, func(env *environment) error {
		cw, err := env.compileFile(ctx, env.compiler(), compileFlags.file)
		if err != nil {
			return err
		}

		out := commandOutput(cmd)
		if compileFlags.model {
			return cli.NewFormatter(cli.FormatJSON).FormatTo(out, cw)
		}
		return cli.NewFormatter(format).FormatTo(out, newCompileReport(compileFlags.file, cw))
	})
}

// CompileReport summarizes a compiled crossword.
type CompileReport struct {
	File       string        `json:"file"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	LightCells int           `json:"light_cells"`
	Across     []ClueSummary `json:"across"`
	Down       []ClueSummary `json:"down"`
	Grid       []string      `json:"grid"`
}

// ClueSummary describes one clue segment.
type ClueSummary struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Length   string   `json:"length"`
	Segments []string `json:"segments,omitempty"` // tail ids, on heads only
	Head     string   `json:"head,omitempty"`     // head id, on tails only
	Solution string   `json:"solution,omitempty"`
}

func newCompileReport(file string, cw *model.Crossword) CompileReport {
	return CompileReport{
		File:       file,
		Width:      cw.Width,
		Height:     cw.Height,
		LightCells: len(cw.LightCells),
		Across:     summarizeClues(cw, cw.Across),
		Down:       summarizeClues(cw, cw.Down),
		Grid:       solutionGrid(cw),
	}
}

func summarizeClues(cw *model.Crossword, clues []*model.Clue) []ClueSummary {
	out := make([]ClueSummary, 0, len(clues))
	for _, c := range clues {
		s := ClueSummary{
			ID:     c.ID,
			Text:   c.ClueText,
			Length: c.LengthNotation(),
		}
		if !c.Solution.IsBlank() {
			s.Solution = c.Solution.String()
		}
		if c.IsHead() {
			s.Length = c.LengthText
			for _, ref := range c.TailSegments {
				s.Segments = append(s.Segments, cw.Clue(ref).ID)
			}
		} else if head := cw.Clue(c.Head); head != nil {
			s.Head = head.ID
		}
		out = append(out, s)
	}
	return out
}

// solutionGrid renders the grid row by row.
func solutionGrid(cw *model.Crossword) []string {
	rows := make([]string, cw.Height)
	for y := range cw.Height {
		var b strings.Builder
		for x := range cw.Width {
			cell := cw.Cells[x][y]
			switch {
			case !cell.Light:
				b.WriteByte('#')
			case cell.Solution.IsBlank():
				b.WriteByte('.')
			default:
				b.WriteByte(byte(cell.Solution))
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// WriteText implements cli.TextWriter.
func (r CompileReport) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %dx%d grid, %d light cells\n", r.File, r.Width, r.Height, r.LightCells)
	writeClueSection(&b, "Across", r.Across)
	writeClueSection(&b, "Down", r.Down)

	b.WriteString("\nGrid\n")
	for _, row := range r.Grid {
		fmt.Fprintf(&b, "  %s\n", row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeClueSection(b *strings.Builder, title string, clues []ClueSummary) {
	if len(clues) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, c := range clues {
		label := c.ID
		if len(c.Segments) > 0 {
			label += "," + strings.Join(c.Segments, ",")
		}
		switch {
		case c.Head != "":
			fmt.Fprintf(b, "  %-8s see %s\n", label, c.Head)
		case c.Solution != "":
			fmt.Fprintf(b, "  %-8s %s (%s)  %s\n", label, c.Text, c.Length, c.Solution)
		default:
			fmt.Fprintf(b, "  %-8s %s (%s)\n", label, c.Text, c.Length)
		}
	}
}

// commandContext returns the command's context, which is nil when a RunE
// function is called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// commandOutput returns the command's stdout writer.
func commandOutput(cmd *cobra.Command) io.Writer {
	if cmd != nil {
		return cmd.OutOrStdout()
	}
	return os.Stdout
}
