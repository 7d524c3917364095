package source

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/model"
)

// Loader reads crossword definition documents. JSON is accepted as the
// subset of YAML it is.
type Loader struct {
	maxFileSize  int64 // Maximum file size in bytes (default: 1MB)
	contextLines int   // Source lines shown around an error (default: 2)
}

// NewLoader creates a loader with default configuration.
func NewLoader() *Loader {
	return &Loader{
		maxFileSize:  1024 * 1024,
		contextLines: 2,
	}
}

// WithMaxFileSize sets the maximum file size limit. Zero disables it.
func (l *Loader) WithMaxFileSize(size int64) *Loader {
	l.maxFileSize = size
	return l
}

// WithContextLines sets how many lines around an error Annotate shows.
func (l *Loader) WithContextLines(n int) *Loader {
	l.contextLines = n
	return l
}

// Source is a loaded definition document: the generic value the compiler
// consumes plus the positions needed to report errors against the file.
type Source struct {
	// Path is the file the document was read from, or the name given to
	// LoadBytes.
	Path string

	// Value is the decoded document: map[string]any, []any, string, int,
	// float64, bool, or nil.
	Value any

	// Positions maps definition paths such as "acrossClues[2].clue" to the
	// location of the value in the document.
	Positions map[string]model.Location

	lines        []string
	contextLines int

	// Alias expansion state for convert.
	expanding map[*yaml.Node]bool
	budget    int
}

// minAliasBudget is the number of nodes a document may always expand to,
// however small it is. Larger documents may expand to twice their size.
const minAliasBudget = 10000

// Load reads and decodes the definition file at path.
func (l *Loader) Load(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, ioError(path, "failed to access file: %v", err)
	}
	if l.maxFileSize > 0 && info.Size() > l.maxFileSize {
		return nil, ioError(path, "file size %d exceeds maximum %d bytes", info.Size(), l.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(path, "failed to read file: %v", err)
	}
	return l.LoadBytes(data, path)
}

// LoadBytes decodes a definition document held in memory. name is used in
// error locations.
func (l *Loader) LoadBytes(data []byte, name string) (*Source, error) {
	if l.maxFileSize > 0 && int64(len(data)) > l.maxFileSize {
		return nil, ioError(name, "document size %d exceeds maximum %d bytes", len(data), l.maxFileSize)
	}

	src := &Source{
		Path:         name,
		Positions:    make(map[string]model.Location),
		lines:        strings.Split(string(data), "\n"),
		contextLines: l.contextLines,
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		loc := model.Location{File: name, Line: syntaxErrorLine(err), Column: 1}
		e := xwErrors.Newf(xwErrors.ErrorTypeSyntax, "YAML parsing failed: %v", err)
		e.Location = loc
		return nil, src.withContext(e)
	}

	if len(doc.Content) == 0 {
		return src, nil
	}
	root := doc.Content[0]

	src.expanding = make(map[*yaml.Node]bool)
	src.budget = max(minAliasBudget, 2*countNodes(root))

	value, err := src.convert(root, "")
	if err != nil {
		if e, ok := xwErrors.As(err); ok {
			src.withContext(e)
		}
		return nil, err
	}
	src.Value = value
	return src, nil
}

// convert turns a YAML node into a generic value, recording the position of
// every node under its definition path.
//
// Aliases are expanded in place. An alias inside its own anchor and a
// document that expands beyond its node budget are syntax errors.
func (s *Source) convert(node *yaml.Node, path string) (any, error) {
	if s.budget--; s.budget < 0 {
		e := xwErrors.Newf(xwErrors.ErrorTypeSyntax,
			"document expands to too many values through aliases").
			WithPath(path).
			WithSuggestion("write the repeated values out instead of using nested aliases")
		e.Location = s.location(node)
		return nil, e
	}
	s.Positions[path] = s.location(node)

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return s.convert(node.Content[0], path)

	case yaml.AliasNode:
		target := node.Alias
		if target == nil || s.expanding[target] {
			e := xwErrors.Newf(xwErrors.ErrorTypeSyntax,
				"alias *%s refers to a value that contains it", node.Value).
				WithPath(path)
			e.Location = s.location(node)
			return nil, e
		}
		s.expanding[target] = true
		defer delete(s.expanding, target)
		return s.convert(target, path)

	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if _, dup := m[key]; dup {
				e := xwErrors.Newf(xwErrors.ErrorTypeSyntax, "duplicate key %q", key).
					WithPath(join(path, key))
				e.Location = s.location(node.Content[i])
				return nil, e
			}
			v, err := s.convert(node.Content[i+1], join(path, key))
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		return m, nil

	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for i, item := range node.Content {
			v, err := s.convert(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil

	default:
		var v any
		if err := node.Decode(&v); err != nil {
			e := xwErrors.Newf(xwErrors.ErrorTypeSyntax, "invalid value %q: %v", node.Value, err).
				WithPath(path)
			e.Location = s.location(node)
			return nil, e
		}
		return v, nil
	}
}

// countNodes counts the nodes of a document without following aliases.
func countNodes(node *yaml.Node) int {
	n := 1
	for _, child := range node.Content {
		n += countNodes(child)
	}
	return n
}

// Location returns the position of the value at path, falling back to the
// closest enclosing value when path itself is absent (a missing field is
// reported at its clue).
func (s *Source) Location(path string) (model.Location, bool) {
	for {
		if loc, ok := s.Positions[path]; ok {
			return loc, true
		}
		if path == "" {
			return model.Location{}, false
		}
		path = parent(path)
	}
}

// Annotate adds the source location and surrounding lines to a compile
// error that carries a definition path. Other errors are returned as is.
func (s *Source) Annotate(err error) error {
	e, ok := xwErrors.As(err)
	if !ok || e.Location.IsValid() {
		return err
	}
	if loc, found := s.Location(e.Path); found {
		e.Location = loc
		s.withContext(e)
	}
	return err
}

func (s *Source) withContext(e *xwErrors.Error) *xwErrors.Error {
	if s.contextLines > 0 && e.Location.IsValid() {
		e.Context = xwErrors.FormatContext(s.lines, e.Location, s.contextLines)
	}
	return e
}

func (s *Source) location(node *yaml.Node) model.Location {
	return model.Location{File: s.Path, Line: node.Line, Column: node.Column}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// parent strips the last ".key" or "[i]" segment from a definition path.
func parent(path string) string {
	i := strings.LastIndexAny(path, ".[")
	if i < 0 {
		return ""
	}
	return path[:i]
}

// syntaxErrorLine extracts N from yaml.v3 messages of the form
// "yaml: line N: ...". It returns 0 when there is none.
func syntaxErrorLine(err error) int {
	msg := err.Error()
	i := strings.Index(msg, "line ")
	if i < 0 {
		return 0
	}
	digits := msg[i+len("line "):]
	end := strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' })
	if end >= 0 {
		digits = digits[:end]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func ioError(path, format string, args ...any) *xwErrors.Error {
	e := xwErrors.Newf(xwErrors.ErrorTypeIO, format, args...)
	e.Message = path + ": " + e.Message
	e.Location = model.Location{File: path}
	return e
}
