// Package crossword compiles declarative crossword definitions into grid
// models.
//
// The work is split across subpackages: grammar parses clue strings,
// markdown renders clue text, schema decodes the definition, compiler
// builds and links the model, and source loads YAML or JSON files with
// positions for error reporting. This package ties them together for the
// common case of compiling a file.
//
//	cw, err := crossword.CompileFile(ctx, "daily.yaml")
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, err) // [coherence] clue 1d conflicts ...
//	}
package crossword

import (
	"context"

	"mercator-hq/crossword/pkg/crossword/compiler"
	"mercator-hq/crossword/pkg/crossword/model"
	"mercator-hq/crossword/pkg/crossword/source"
)

// CompileFile loads the definition at path and compiles it. Errors carry
// the file position of the offending value.
func CompileFile(ctx context.Context, path string, opts ...compiler.Option) (*model.Crossword, error) {
	src, err := source.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	return CompileSource(ctx, src, compiler.New(opts...))
}

// CompileBytes decodes a YAML or JSON definition held in memory and
// compiles it. name is used in error locations.
func CompileBytes(ctx context.Context, data []byte, name string, opts ...compiler.Option) (*model.Crossword, error) {
	src, err := source.NewLoader().LoadBytes(data, name)
	if err != nil {
		return nil, err
	}
	return CompileSource(ctx, src, compiler.New(opts...))
}

// CompileSource compiles an already loaded source with c and annotates any
// error with its source position.
func CompileSource(ctx context.Context, src *source.Source, c *compiler.Compiler) (*model.Crossword, error) {
	cw, err := c.Compile(ctx, src.Value)
	if err != nil {
		return nil, src.Annotate(err)
	}
	return cw, nil
}
