// Package source loads crossword definition documents from YAML or JSON.
//
// The compiler works on plain Go values, so a Source carries both the
// decoded document and a map from definition paths to file positions.
// Annotate uses that map to point compile errors at the offending line:
//
//	src, err := source.NewLoader().Load("daily.yaml")
//	if err != nil {
//	    return err
//	}
//	cw, err := compiler.New().Compile(ctx, src.Value)
//	if err != nil {
//	    return src.Annotate(err)
//	}
package source
