// Package metrics exports Prometheus metrics for crossword compilation and
// file watching.
//
// A Collector implements compiler.Recorder, so it plugs straight into the
// compiler:
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	c := compiler.New(compiler.WithRecorder(collector))
//	srv := collector.NewServer() // serves cfg.Metrics.Path
//
// With the default namespace and subsystem, metric names start with
// "xwc_compiler_".
package metrics
