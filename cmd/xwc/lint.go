package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/crossword/pkg/cli"
	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/watch"
)

var lintFlags struct {
	file     string
	dir      string
	format   string
	progress bool
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check crossword definition files",
	Long: `Compile crossword definition files and report every failure.

Each file is loaded and compiled in full:
  - YAML/JSON syntax
  - Definition structure and clue fields
  - Clue string grammar and solution lengths
  - Grid bounds and crossing letters
  - Multi-segment references

Errors are reported with the file, line and column of the offending value.

Examples:
  # Lint single file
  xwc lint --file daily.yaml

  # Lint directory (recursively, using watch.extensions)
  xwc lint --dir puzzles/

  # JSON output for CI/CD
  xwc lint --dir puzzles/ --format json`,
	RunE: lintDefinitions,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "definition file to check")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of definition files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
	lintCmd.Flags().BoolVar(&lintFlags.progress, "progress", false, "report progress on stderr")
}

func lintDefinitions(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return cli.NewConfigError("file", "either --file or --dir must be specified")
	}
	format, err := cli.ParseFormat(lintFlags.format)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	return withEnvironment(ctx, func(env *environment) error {
		var files []string
		if lintFlags.file != "" {
			files = append(files, lintFlags.file)
		}
		if lintFlags.dir != "" {
			matches, err := watch.Files(lintFlags.dir, env.cfg.Watch.Extensions, env.cfg.Watch.IncludeHidden)
			if err != nil {
				return cli.NewCommandError("lint", fmt.Errorf("failed to list definition files: %w", err))
			}
			files = append(files, matches...)
		}
		if len(files) == 0 {
			return cli.NewCommandError("lint", errors.New("no definition files found"))
		}

		var progress cli.ProgressReporter
		if lintFlags.progress {
			progress = cli.NewProgressReporter(nil, "files")
			progress.Start(int64(len(files)))
		}

		c := env.compiler()
		report := LintReport{Results: make([]LintResult, 0, len(files))}
		for i, file := range files {
			_, err := env.compileFile(ctx, c, file)
			report.add(file, err)
			if progress != nil {
				progress.Update(int64(i + 1))
			}
		}
		if progress != nil {
			progress.Finish()
		}

		if err := cli.NewFormatter(format).FormatTo(commandOutput(cmd), report); err != nil {
			return err
		}
		if report.Failed > 0 {
			return &cli.LintError{Failed: report.Failed, Total: len(report.Results)}
		}
		return nil
	})
}

// LintReport collects the result of every linted file.
type LintReport struct {
	Results []LintResult `json:"results"`
	Failed  int          `json:"failed"`
}

// LintResult is the outcome for a single definition file.
type LintResult struct {
	File  string     `json:"file"`
	Valid bool       `json:"valid"`
	Error *LintIssue `json:"error,omitempty"`
}

// LintIssue describes the error that stopped a compile.
type LintIssue struct {
	Type       string `json:"type,omitempty"`
	Clue       string `json:"clue,omitempty"`
	Path       string `json:"path,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Context    string `json:"context,omitempty"`
}

func (r *LintReport) add(file string, err error) {
	result := LintResult{File: file, Valid: err == nil}
	if err != nil {
		result.Error = newLintIssue(err)
		r.Failed++
	}
	r.Results = append(r.Results, result)
}

func newLintIssue(err error) *LintIssue {
	e, ok := xwErrors.As(err)
	if !ok {
		return &LintIssue{Message: err.Error()}
	}
	return &LintIssue{
		Type:       string(e.Type),
		Clue:       e.Clue,
		Path:       e.Path,
		Line:       e.Location.Line,
		Column:     e.Location.Column,
		Message:    e.Message,
		Suggestion: e.Suggestion,
		Context:    e.Context,
	}
}

// WriteText implements cli.TextWriter.
func (r LintReport) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, result := range r.Results {
		writeLintResult(&b, result)
	}

	fmt.Fprintf(&b, "\nSummary:\n  %d file(s), %d failed\n", len(r.Results), r.Failed)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeLintResult(b *strings.Builder, result LintResult) {
	if result.Valid {
		fmt.Fprintf(b, "✓ %s\n", result.File)
		return
	}

	issue := result.Error
	fmt.Fprintf(b, "✗ %s", result.File)
	if issue.Line > 0 {
		fmt.Fprintf(b, ":%d", issue.Line)
		if issue.Column > 0 {
			fmt.Fprintf(b, ":%d", issue.Column)
		}
	}
	b.WriteString(": ")
	if issue.Type != "" {
		fmt.Fprintf(b, "[%s] ", issue.Type)
	}
	b.WriteString(issue.Message)
	b.WriteByte('\n')

	if issue.Context != "" {
		for _, line := range strings.Split(strings.TrimRight(issue.Context, "\n"), "\n") {
			fmt.Fprintf(b, "    %s\n", line)
		}
	}
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "    suggestion: %s\n", issue.Suggestion)
	}
}
