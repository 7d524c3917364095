/*
Package cli provides command-line interface utilities for xwc.

The cli package includes output formatters, a progress reporter, error
types with exit codes, and signal handling used by the xwc command.

Output Formatting:

Command results are printed as text or JSON. Results implementing
TextWriter render their own text form:

	format, err := cli.ParseFormat(flagValue)
	if err != nil {
		return err
	}
	if err := cli.NewFormatter(format).FormatTo(os.Stdout, report); err != nil {
		return err
	}

Progress Reporting:

Linting a large directory reports progress on stderr:

	progress := cli.NewProgressReporter(os.Stderr, "files")
	progress.Start(int64(len(files)))
	for i, f := range files {
		lint(f)
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()

Exit Codes:

ExitCode maps command errors to process exit codes: configuration errors
exit with 2, every other failure with 1.
*/
package cli
