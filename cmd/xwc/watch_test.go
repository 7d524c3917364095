package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"mercator-hq/crossword/pkg/cli"
	"mercator-hq/crossword/pkg/crossword/compiler"
	"mercator-hq/crossword/pkg/telemetry/health"
	"mercator-hq/crossword/pkg/telemetry/metrics"
)

func TestWatchDefinitions_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		dir  string
	}{
		{"neither", "", ""},
		{"both", "testdata/valid.yaml", "testdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := testCommand(t)
			watchFlags.file, watchFlags.dir, watchFlags.metricsAddr = tt.file, tt.dir, ""

			err := watchDefinitions(cmd, nil)
			var cfgErr *cli.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("watchDefinitions() error = %v, want *cli.ConfigError", err)
			}
		})
	}
}

func TestWatchDefinitions_StopsOnCancel(t *testing.T) {
	cmd, out := testCommand(t)
	dir := t.TempDir()
	copyTestdata(t, dir, "valid.yaml")
	watchFlags.file, watchFlags.dir, watchFlags.metricsAddr = "", dir, ""

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd.SetContext(ctx)

	if err := watchDefinitions(cmd, nil); err != nil {
		t.Fatalf("watchDefinitions() error = %v", err)
	}
	if !strings.Contains(out.String(), "✓ "+filepath.Join(dir, "valid.yaml")) {
		t.Errorf("initial compile missing from output:\n%s", out.String())
	}
}

func TestDefinitionWatcher_Recompile(t *testing.T) {
	testCommand(t)
	env, err := newEnvironment(context.Background())
	if err != nil {
		t.Fatalf("newEnvironment() error = %v", err)
	}
	defer env.close(context.Background())

	dir := t.TempDir()
	valid := copyTestdata(t, dir, "valid.yaml")
	invalid := copyTestdata(t, dir, "invalid.yaml")
	removed := filepath.Join(dir, "removed.yaml")

	collector := metrics.NewCollector(&env.cfg.Metrics, nil)
	var out bytes.Buffer
	w := newDefinitionWatcher(env, env.compiler(compiler.WithRecorder(collector)), &out)

	w.recompile(context.Background(), []string{invalid, removed, valid})

	got := out.String()
	for _, part := range []string{"✗ " + invalid + ":6:11: [grammar]", "- " + removed + " removed\n", "✓ " + valid + "\n"} {
		if !strings.Contains(got, part) {
			t.Errorf("output missing %q:\n%s", part, got)
		}
	}
	if strings.Index(got, "✗ "+invalid) > strings.Index(got, "✓ "+valid) {
		t.Errorf("results out of order:\n%s", got)
	}

	n, err := testutil.GatherAndCount(collector.Registry(), "xwc_compiler_compiles_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if n != 2 {
		t.Errorf("compiles_total series = %d, want 2 (success and error)", n)
	}
}

func TestDefinitionWatcher_Check(t *testing.T) {
	testCommand(t)
	env, err := newEnvironment(context.Background())
	if err != nil {
		t.Fatalf("newEnvironment() error = %v", err)
	}
	defer env.close(context.Background())

	dir := t.TempDir()
	valid := copyTestdata(t, dir, "valid.yaml")
	invalid := copyTestdata(t, dir, "invalid.yaml")

	var out bytes.Buffer
	w := newDefinitionWatcher(env, env.compiler(), &out)

	w.recompile(context.Background(), []string{valid})
	if err := w.check(context.Background()); err != nil {
		t.Errorf("check() error = %v, want nil", err)
	}

	w.recompile(context.Background(), []string{invalid})
	err = w.check(context.Background())
	if err == nil || !strings.Contains(err.Error(), "1 of 2 definitions fail to compile: "+invalid) {
		t.Errorf("check() error = %v", err)
	}

	if err := os.Remove(invalid); err != nil {
		t.Fatal(err)
	}
	w.recompile(context.Background(), []string{invalid})
	if err := w.check(context.Background()); err != nil {
		t.Errorf("check() after removal error = %v, want nil", err)
	}
}

func TestServeMetrics_Health(t *testing.T) {
	testCommand(t)
	env, err := newEnvironment(context.Background())
	if err != nil {
		t.Fatalf("newEnvironment() error = %v", err)
	}
	defer env.close(context.Background())
	env.cfg.Metrics.ListenAddress = "127.0.0.1:0"

	checker := health.New(time.Second)
	checker.RegisterCheck("definitions", func(ctx context.Context) error {
		return errors.New("1 of 1 definitions fail to compile: daily.yaml")
	})

	collector := metrics.NewCollector(&env.cfg.Metrics, nil)
	srv := httptest.NewServer(collector.NewServer(func(mux *http.ServeMux) {
		checker.Mount(mux, health.VersionInfo{Version: Version})
	}).Handler)
	defer srv.Close()

	tests := []struct {
		path string
		want int
	}{
		{env.cfg.Metrics.Path, http.StatusOK},
		{health.LivenessPath, http.StatusOK},
		{health.ReadinessPath, http.StatusServiceUnavailable},
		{health.VersionPath, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := srv.Client().Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET error = %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, resp.StatusCode, tt.want)
			}
		})
	}

	shutdown, err := serveMetrics(env, collector, checker)
	if err != nil {
		t.Fatalf("serveMetrics() error = %v", err)
	}
	shutdown()
}
