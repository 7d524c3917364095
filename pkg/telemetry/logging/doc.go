// Package logging configures log/slog for the crossword tools.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	ctx = logging.WithCompileID(ctx, uuid.NewString())
//	logging.FromContext(ctx, logger).Info("Compiling", "file", path)
//
// Libraries in this module take a *slog.Logger and default to Discard, so
// nothing is written unless a caller asks for it.
package logging
