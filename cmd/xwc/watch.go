package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/crossword/pkg/cli"
	"mercator-hq/crossword/pkg/crossword/compiler"
	"mercator-hq/crossword/pkg/telemetry/health"
	"mercator-hq/crossword/pkg/telemetry/metrics"
	"mercator-hq/crossword/pkg/watch"
)

const metricsShutdownTimeout = 5 * time.Second

var watchFlags struct {
	file        string
	dir         string
	metricsAddr string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompile crossword definitions when they change",
	Long: `Compile crossword definitions, then recompile each one whenever it changes.

Directories are watched recursively. Bursts of changes are debounced
(watch.debounce_interval) so every file is recompiled once per burst.
While running, Prometheus metrics are served when metrics.enabled is set
or --metrics-addr is given. The same server answers /healthz, /readyz
and /version; /readyz fails while any watched definition does not
compile. Stop with Ctrl-C.

Examples:
  # Watch a single file
  xwc watch --file daily.yaml

  # Watch a directory and serve metrics
  xwc watch --dir puzzles/ --metrics-addr 127.0.0.1:9090`,
	RunE: watchDefinitions,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.file, "file", "f", "", "definition file to watch")
	watchCmd.Flags().StringVarP(&watchFlags.dir, "dir", "d", "", "directory of definition files to watch")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "serve metrics on this address (enables metrics)")
}

func watchDefinitions(cmd *cobra.Command, args []string) error {
	path := watchFlags.file
	if watchFlags.dir != "" {
		if path != "" {
			return cli.NewConfigError("dir", "--file and --dir are mutually exclusive")
		}
		path = watchFlags.dir
	}
	if path == "" {
		return cli.NewConfigError("file", "either --file or --dir must be specified")
	}

	ctx, stop := cli.SetupSignalHandler(commandContext(cmd))
	defer stop()

	return withEnvironment(ctx, func(env *environment) error {
		if watchFlags.metricsAddr != "" {
			env.cfg.Metrics.Enabled = true
			env.cfg.Metrics.ListenAddress = watchFlags.metricsAddr
		}

		collector := metrics.NewCollector(&env.cfg.Metrics, nil)
		w := newDefinitionWatcher(env, env.compiler(compiler.WithRecorder(collector)), commandOutput(cmd))

		var watching atomic.Bool
		checker := health.New(0)
		checker.RegisterCheck("watcher", func(ctx context.Context) error {
			if !watching.Load() {
				return errors.New("file watcher not started")
			}
			return nil
		})
		checker.RegisterCheck("definitions", w.check)

		if env.cfg.Metrics.Enabled {
			shutdown, err := serveMetrics(env, collector, checker)
			if err != nil {
				return cli.NewCommandError("watch", err)
			}
			defer shutdown()
		}

		files, err := watch.Files(path, env.cfg.Watch.Extensions, env.cfg.Watch.IncludeHidden)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		w.recompile(ctx, files)

		fw, err := watch.NewFileWatcher(watch.Config{
			Path:             path,
			DebounceInterval: env.cfg.Watch.DebounceInterval,
			Extensions:       env.cfg.Watch.Extensions,
			IncludeHidden:    env.cfg.Watch.IncludeHidden,
		}, env.logger, watch.WithErrorHandler(func(error) {
			collector.Watch().RecordError()
		}))
		if err != nil {
			return cli.NewCommandError("watch", err)
		}

		watching.Store(true)
		defer watching.Store(false)
		return fw.Watch(ctx, func(paths []string) {
			collector.Watch().RecordBatch(len(paths))
			w.recompile(ctx, paths)
		})
	})
}

// serveMetrics starts the metrics and health server and returns a function
// that stops it. Binding happens before returning so address errors surface
// at once.
func serveMetrics(env *environment, collector *metrics.Collector, checker *health.Checker) (func(), error) {
	srv := collector.NewServer(func(mux *http.ServeMux) {
		checker.Mount(mux, health.VersionInfo{Version: Version, Commit: GitCommit, BuildTime: BuildDate})
	})
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen for metrics: %w", err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			env.logger.Error("Metrics server failed", "error", err)
		}
	}()
	env.logger.Info("Metrics server listening",
		"address", ln.Addr().String(),
		"path", env.cfg.Metrics.Path,
	)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			env.logger.Warn("Metrics server shutdown failed", "error", err)
		}
	}, nil
}

// definitionWatcher recompiles changed files and prints one line per file.
// It remembers which files currently fail so readiness can report them.
type definitionWatcher struct {
	env      *environment
	compiler *compiler.Compiler
	out      io.Writer

	mu      sync.Mutex
	results map[string]bool
}

func newDefinitionWatcher(env *environment, c *compiler.Compiler, out io.Writer) *definitionWatcher {
	return &definitionWatcher{
		env:      env,
		compiler: c,
		out:      out,
		results:  make(map[string]bool),
	}
}

// check is the "definitions" readiness check.
func (w *definitionWatcher) check(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var failing []string
	for path, ok := range w.results {
		if !ok {
			failing = append(failing, path)
		}
	}
	if len(failing) == 0 {
		return nil
	}
	sort.Strings(failing)
	return fmt.Errorf("%d of %d definitions fail to compile: %s",
		len(failing), len(w.results), strings.Join(failing, ", "))
}

func (w *definitionWatcher) record(path string, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.results[path] = ok
}

func (w *definitionWatcher) forget(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.results, path)
}

func (w *definitionWatcher) recompile(ctx context.Context, paths []string) {
	var b strings.Builder
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			w.env.logger.Info("Definition removed", "path", path)
			fmt.Fprintf(&b, "- %s removed\n", path)
			w.forget(path)
			continue
		}

		_, err := w.env.compileFile(ctx, w.compiler, path)
		w.record(path, err == nil)
		if err != nil {
			w.env.logger.Warn("Definition failed to compile", "path", path, "error", err)
		} else {
			w.env.logger.Info("Definition compiled", "path", path)
		}

		var report LintReport
		report.add(path, err)
		writeLintResult(&b, report.Results[0])
	}
	_, _ = io.WriteString(w.out, b.String())
}
