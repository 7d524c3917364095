// xwc compiles crossword definitions into grid models.
//
// A definition is a YAML or JSON document giving the grid size and the
// across and down clues, each with its start cell and a clue string such as
// "3. Red or green fruit (5)". xwc checks that the clues fit the grid and
// agree where they cross, links multi-segment clues, and reports errors
// against the line and column of the offending value.
//
// Usage:
//
//	# Compile one definition and print a summary
//	xwc compile --file daily.yaml
//
//	# Print the full model as JSON
//	xwc compile --file daily.yaml --model
//
//	# Check every definition in a directory
//	xwc lint --dir puzzles/
//
//	# Recompile on change and serve Prometheus metrics
//	xwc watch --dir puzzles/ --metrics-addr 127.0.0.1:9090
//
//	# Show version information
//	xwc version
package main

import (
	"os"

	"mercator-hq/crossword/pkg/cli"
)

func main() {
	os.Exit(cli.ExitCode(Execute()))
}
