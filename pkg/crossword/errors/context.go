package errors

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mercator-hq/crossword/pkg/crossword/model"
)

// ExtractContext reads the definition file and formats the lines around
// the given location. It returns "" when the file cannot be read.
func ExtractContext(location model.Location, contextLines int) string {
	if !location.IsValid() {
		return ""
	}

	file, err := os.Open(location.File)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return ""
	}

	return FormatContext(lines, location, contextLines)
}

// FormatContext formats the lines surrounding location with line numbers,
// marking the error line with "->" and the column with "^".
func FormatContext(lines []string, location model.Location, contextLines int) string {
	if location.Line <= 0 || location.Line > len(lines) {
		return ""
	}

	errorLine := location.Line - 1 // Convert to 0-based index
	startLine := max(errorLine-contextLines, 0)
	endLine := min(errorLine+contextLines, len(lines)-1)

	var sb strings.Builder
	maxLineNumWidth := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		lineNumStr := fmt.Sprintf("%*d", maxLineNumWidth, i+1)
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}

		sb.WriteString(fmt.Sprintf("%s %s | %s\n", prefix, lineNumStr, lines[i]))

		if i == errorLine && location.Column > 0 {
			padding := strings.Repeat(" ", location.Column-1)
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", maxLineNumWidth), padding))
		}
	}

	return sb.String()
}

// WithContext attaches source context to err from the file it points at.
func WithContext(err *Error, contextLines int) *Error {
	if err.Location.IsValid() {
		err.Context = ExtractContext(err.Location, contextLines)
	}
	return err
}
